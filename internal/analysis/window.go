package analysis

import "github.com/sjzar/chatrecap/internal/model"

// FilterWindow 返回落在窗口内的消息，保持原有顺序
func FilterWindow(sorted []*model.Message, w model.Window) []*model.Message {
	out := make([]*model.Message, 0, len(sorted))
	for _, m := range sorted {
		if w.Contains(m.Time) {
			out = append(out, m)
		}
	}
	return out
}
