package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/chatrecap/internal/errors"
)

const sampleExport = `{"messages":[
	{"createTime":1735689600,"senderDisplayName":"小明","type":"文本消息","content":"星露谷","isSend":1},
	{"createTime":0,"senderDisplayName":"阿花","type":"文本消息","content":"丢弃"},
	{"createTime":"1735776000","type":"图片消息","isSend":true},
	"not an object",
	{"createTime":1735862400,"senderDisplayName":"阿花","content":null,"isSend":0}
]}`

func TestDecodeNestedAndWeakTypes(t *testing.T) {
	entries, err := Decode([]byte(sampleExport))
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, float64(1735689600), entries[0].CreateTime)
	assert.Equal(t, "小明", entries[0].SenderName())
	assert.True(t, entries[0].IsOutgoing())

	assert.Equal(t, float64(0), entries[1].CreateTime)

	assert.Equal(t, float64(1735776000), entries[2].CreateTime)
	assert.Nil(t, entries[2].SenderDisplayName)
	assert.Equal(t, "", entries[2].Text())
	assert.True(t, entries[2].IsOutgoing())

	assert.Nil(t, entries[3].Content)
	assert.Nil(t, entries[3].Type)
	assert.False(t, entries[3].IsOutgoing())
}

func TestDecodeKeepsEntriesWithOddFields(t *testing.T) {
	export := `[
		{"createTime":1735700000,"senderDisplayName":"小明","type":"文本消息","content":{"title":"分享"},"isSend":1},
		{"createTime":1735700001,"senderDisplayName":"阿花","type":"文本消息","content":["a","b"],"isSend":0},
		{"createTime":1735700002,"senderDisplayName":"阿花","type":"文本消息","content":"在吗","isSend":"true"},
		{"createTime":"1735700004.5","senderDisplayName":"小明","type":"文本消息","content":"在","isSend":1},
		{"createTime":1735700005,"senderDisplayName":"小明","type":"文本消息","content":"好","isSend":{"v":1}},
		{"createTime":{"bad":true},"content":"无效时间"}
	]`
	entries, err := Decode([]byte(export))
	require.NoError(t, err)
	require.Len(t, entries, 5)

	assert.Equal(t, "", entries[0].Text())
	assert.True(t, entries[0].IsOutgoing())
	assert.Equal(t, "", entries[1].Text())
	assert.False(t, entries[2].IsOutgoing())
	assert.Equal(t, 1735700004.5, entries[3].CreateTime)
	assert.False(t, entries[4].IsOutgoing())
}

func TestDecodeBareList(t *testing.T) {
	nested, err := Decode([]byte(`{"messages":[{"createTime":1,"content":"a"}]}`))
	require.NoError(t, err)
	bare, err := Decode([]byte(`[{"createTime":1,"content":"a"}]`))
	require.NoError(t, err)
	assert.Equal(t, nested, bare)
}

func TestDecodeEdgeCases(t *testing.T) {
	entries, err := Decode([]byte(`{"other":[]}`))
	require.NoError(t, err)
	assert.Empty(t, entries)

	entries, err = Decode([]byte(`null`))
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = Decode([]byte(`"string root"`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{broken`))
	assert.Error(t, err)
}

func compress(t *testing.T, kind Compression, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	switch kind {
	case CompressionGzip:
		w = gzip.NewWriter(&buf)
	case CompressionZstd:
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		w = zw
	case CompressionLZ4:
		w = lz4.NewWriter(&buf)
	default:
		return data
	}
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestLoadCompressed(t *testing.T) {
	dir := t.TempDir()
	plain := []byte(sampleExport)
	want := Fingerprint(plain)

	for _, kind := range []Compression{CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4} {
		t.Run(string(kind), func(t *testing.T) {
			path := filepath.Join(dir, "chat-"+string(kind))
			require.NoError(t, os.WriteFile(path, compress(t, kind, plain), 0o644))

			exp, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, kind, exp.Compression)
			assert.Equal(t, want, exp.Fingerprint)
			assert.Len(t, exp.Entries, 4)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	var e *errors.Error
	assert.True(t, errors.As(err, &e))

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, "", Fingerprint(nil))
	assert.Equal(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abc")))
	assert.NotEqual(t, Fingerprint([]byte("abc")), Fingerprint([]byte("abd")))
}
