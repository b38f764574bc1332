package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/chatrecap/internal/model"
)

func TestNormalizeDropsZeroTimestamp(t *testing.T) {
	entries := []*model.RawEntry{
		{CreateTime: 0, Content: "lost"},
		raw(at(2025, 1, 2, 10, 0), "A", model.MessageTypeText, "hi", 1),
		nil,
		{CreateTime: 0},
	}
	got := Normalize(entries, cst)
	require.Len(t, got, 1)
	assert.Equal(t, "hi", got[0].Content)
	assert.True(t, got[0].IsSelf)
}

func TestNormalizeDefaults(t *testing.T) {
	entries := []*model.RawEntry{
		{CreateTime: float64(at(2025, 1, 1, 8, 0).Unix()), IsSend: 0.0},
		{CreateTime: float64(at(2025, 1, 1, 9, 0).Unix()), SenderDisplayName: "", IsSend: 2.0},
	}
	got := Normalize(entries, cst)
	require.Len(t, got, 2)
	assert.Equal(t, model.SenderUnknown, got[0].Sender)
	assert.Equal(t, "", got[0].Content)
	assert.Equal(t, "", got[0].Type)
	assert.False(t, got[0].IsSelf)

	// 字段存在但为空时不使用默认值
	assert.Equal(t, "", got[1].Sender)
	assert.False(t, got[1].IsSelf)
	assert.Equal(t, cst, got[1].Time.Location())
}

func TestNormalizeLooseFields(t *testing.T) {
	base := float64(at(2025, 1, 1, 10, 0).Unix())
	entries := []*model.RawEntry{
		{CreateTime: base, SenderDisplayName: "A", Type: model.MessageTypeText, Content: map[string]interface{}{"title": "链接"}, IsSend: 1.0},
		{CreateTime: base + 1, SenderDisplayName: "B", Type: model.MessageTypeText, Content: []interface{}{"a", "b"}, IsSend: "true"},
		{CreateTime: base + 2.5, SenderDisplayName: 42.0, Type: model.MessageTypeText, Content: "hi", IsSend: true},
		{CreateTime: base + 3, SenderDisplayName: "A", Content: "x", IsSend: "1"},
		{CreateTime: base + 4, SenderDisplayName: "B", Content: "y", IsSend: map[string]interface{}{}},
	}
	got := Normalize(entries, cst)
	require.Len(t, got, 5)

	// 非字符串内容保留为空文本，消息本身仍参与计数
	assert.Equal(t, "", got[0].Content)
	assert.True(t, got[0].IsSelf)
	assert.Equal(t, "", got[1].Content)
	assert.False(t, got[1].IsSelf)

	assert.Equal(t, "42", got[2].Sender)
	assert.True(t, got[2].IsSelf)
	assert.Equal(t, 500*time.Millisecond, got[2].Time.Sub(at(2025, 1, 1, 10, 0).Add(2*time.Second)))

	assert.True(t, got[3].IsSelf)
	assert.False(t, got[4].IsSelf)
}

func TestNormalizeSortsStably(t *testing.T) {
	same := at(2025, 3, 1, 12, 0)
	entries := []*model.RawEntry{
		raw(at(2025, 3, 2, 0, 0), "A", model.MessageTypeText, "late", 0),
		raw(same, "A", model.MessageTypeText, "first", 0),
		raw(at(2025, 2, 1, 0, 0), "A", model.MessageTypeText, "early", 0),
		raw(same, "B", model.MessageTypeText, "second", 0),
	}
	got := Normalize(entries, cst)
	require.Len(t, got, 4)
	contents := make([]string, 0, len(got))
	for i, m := range got {
		contents = append(contents, m.Content)
		if i > 0 {
			assert.False(t, m.Time.Before(got[i-1].Time))
		}
	}
	assert.Equal(t, []string{"early", "first", "second", "late"}, contents)
}

func TestFirstMessageEver(t *testing.T) {
	sys := msg(at(2024, 5, 1, 0, 0), "sys", model.MessageTypeSystem, "你已添加了对方", false)
	first := text(at(2024, 5, 1, 0, 1), "B", "你好")

	assert.Same(t, first, FirstMessageEver([]*model.Message{sys, first}))
	assert.Same(t, sys, FirstMessageEver([]*model.Message{sys}))
	assert.Nil(t, FirstMessageEver(nil))
}

func TestFilterWindowInclusive(t *testing.T) {
	w := window(at(2025, 1, 1, 0, 0), at(2025, 1, 3, 0, 0))
	before := text(time.Date(2024, 12, 31, 23, 59, 59, 0, cst), "A", "before")
	start := text(time.Date(2025, 1, 1, 0, 0, 0, 0, cst), "A", "start")
	end := text(time.Date(2025, 1, 3, 23, 59, 59, 0, cst), "A", "end")
	after := text(time.Date(2025, 1, 4, 0, 0, 0, 0, cst), "A", "after")

	got := FilterWindow([]*model.Message{before, start, end, after}, w)
	assert.Equal(t, []*model.Message{start, end}, got)
}
