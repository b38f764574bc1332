package analysis

import "github.com/sjzar/chatrecap/internal/model"

// ResolveParticipants 判定“我”和“对方”的显示名
// 以每个发送者在窗口内的第一条消息的 is_self 为准；同一角色出现多个
// 发送者时后出现的覆盖先出现的。发送者不足两个时未确定的角色保留默认名。
// 导出数据中同一发送者的 isSend 不一致时，以第一条为准。
func ResolveParticipants(windowed []*model.Message) model.Participants {
	p := model.DefaultParticipants()
	seen := make(map[string]struct{})
	for _, m := range windowed {
		if _, ok := seen[m.Sender]; ok {
			continue
		}
		seen[m.Sender] = struct{}{}
		if m.IsSelf {
			p.Self = m.Sender
		} else {
			p.Other = m.Sender
		}
	}
	return p
}
