package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression 导出文件的压缩格式
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
	CompressionLZ4  Compression = "lz4"
)

var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Sniff 根据文件头判断压缩格式
func Sniff(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, magicZstd):
		return CompressionZstd
	case bytes.HasPrefix(head, magicLZ4):
		return CompressionLZ4
	case bytes.HasPrefix(head, magicGzip):
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// Decompress 读取 r 的全部内容，必要时先解压
func Decompress(r io.Reader) ([]byte, Compression, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(4)
	kind := Sniff(head)

	var body io.Reader = br
	switch kind {
	case CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, kind, fmt.Errorf("gzip reader: %w", err)
		}
		defer zr.Close()
		body = zr
	case CompressionZstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, kind, fmt.Errorf("zstd reader: %w", err)
		}
		defer dec.Close()
		body = dec
	case CompressionLZ4:
		body = lz4.NewReader(br)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, kind, fmt.Errorf("read %s body: %w", kind, err)
	}
	return data, kind, nil
}
