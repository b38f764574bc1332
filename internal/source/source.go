package source

import (
	"fmt"
	"os"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/internal/model"
)

// Export 是读入内存的聊天导出
type Export struct {
	Path        string
	Compression Compression
	Fingerprint string
	Entries     []*model.RawEntry
}

// Load 读取并解析导出文件，支持 gzip / zstd / lz4 压缩
func Load(path string) (*Export, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.SourceOpen(path, err)
	}
	defer f.Close()

	data, kind, err := Decompress(f)
	if err != nil {
		return nil, errors.SourceOpen(path, err)
	}

	entries, err := Decode(data)
	if err != nil {
		return nil, errors.SourceDecode(err)
	}

	exp := &Export{
		Path:        path,
		Compression: kind,
		Fingerprint: Fingerprint(data),
		Entries:     entries,
	}
	log.Debug().
		Str("path", path).
		Str("compression", string(kind)).
		Int("entries", len(entries)).
		Str("fingerprint", exp.Fingerprint).
		Msg("chat export loaded")
	return exp, nil
}

// Fingerprint 计算解压后内容的指纹：长度 + xxhash64
// 同一份导出无论是否压缩，指纹一致
func Fingerprint(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return fmt.Sprintf("%d-%016x", len(data), xxhash.Sum64(data))
}
