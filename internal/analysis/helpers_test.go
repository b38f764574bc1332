package analysis

import (
	"strings"
	"time"

	"github.com/sjzar/chatrecap/internal/model"
)

var cst = time.FixedZone("CST", 8*3600)

func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, cst)
}

func raw(t time.Time, sender, typ, content string, isSend int) *model.RawEntry {
	return &model.RawEntry{
		CreateTime:        float64(t.Unix()),
		SenderDisplayName: sender,
		Type:              typ,
		Content:           content,
		IsSend:            float64(isSend),
	}
}

func msg(t time.Time, sender, typ, content string, self bool) *model.Message {
	return &model.Message{Time: t, Sender: sender, Type: typ, Content: content, IsSelf: self}
}

func text(t time.Time, sender, content string) *model.Message {
	return msg(t, sender, model.MessageTypeText, content, false)
}

// spaceSegmenter 按空白切词，测试里用来替代词典分词
type spaceSegmenter struct{}

func (spaceSegmenter) Name() string { return "space" }

func (spaceSegmenter) Cut(s string) []string { return strings.Fields(s) }

func window(start, end time.Time) model.Window {
	return model.NewWindow(start, end, cst)
}
