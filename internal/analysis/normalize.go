package analysis

import (
	"sort"
	"time"

	"github.com/sjzar/chatrecap/internal/model"
)

// Normalize 将原始导出记录转换为统一的 Message 序列，并按时间稳定升序排序
// createTime 缺失或为 0 的记录直接丢弃，不视为错误
func Normalize(entries []*model.RawEntry, loc *time.Location) []*model.Message {
	if loc == nil {
		loc = time.Local
	}

	messages := make([]*model.Message, 0, len(entries))
	for _, e := range entries {
		ts, ok := e.Timestamp(loc)
		if !ok {
			continue
		}
		messages = append(messages, &model.Message{
			Time:    ts,
			Sender:  e.SenderName(),
			Content: e.Text(),
			Type:    e.MessageType(),
			IsSelf:  e.IsOutgoing(),
		})
	}
	// 同一秒内的消息保持导出时的相对顺序
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Time.Before(messages[j].Time)
	})
	return messages
}

// FirstMessageEver 返回排序后序列中的第一条非系统消息；
// 全部为系统消息时退回第一条消息，序列为空时返回 nil
// 必须在窗口过滤之前调用
func FirstMessageEver(sorted []*model.Message) *model.Message {
	for _, m := range sorted {
		if !m.IsSystem() {
			return m
		}
	}
	if len(sorted) > 0 {
		return sorted[0]
	}
	return nil
}
