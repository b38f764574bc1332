package model

import "time"

// Memory 报告中“回忆”页使用的单条消息
type Memory struct {
	Sender  string    `json:"sender"`
	Time    time.Time `json:"time"`
	Content string    `json:"content"`
	Type    string    `json:"type"`
	Display string    `json:"display"`
}

func NewMemory(m *Message) *Memory {
	if m == nil {
		return nil
	}
	return &Memory{
		Sender:  m.Sender,
		Time:    m.Time,
		Content: m.Content,
		Type:    m.Type,
		Display: m.DisplayContent(),
	}
}

// ReportMeta 描述一次报告生成
type ReportMeta struct {
	ID          string    `json:"id"`
	GeneratedAt time.Time `json:"generated_at"`
	Source      string    `json:"source,omitempty"`
	Fingerprint string    `json:"fingerprint,omitempty"`
	Segmenter   string    `json:"segmenter,omitempty"`
}

// Report 汇总全部统计结果，交给渲染层使用，生成后只读
type Report struct {
	Meta         ReportMeta   `json:"meta"`
	Window       Window       `json:"window"`
	Participants Participants `json:"participants"`

	TotalMessages int     `json:"total_messages"`
	TotalChars    int     `json:"total_chars"`
	DailyAverage  float64 `json:"daily_average"`

	Senders []SenderStat `json:"senders"`
	Types   []TypeStat   `json:"types"`
	Daily   []DayCount   `json:"daily"`
	Hourly  []HourCount  `json:"hourly"`

	// Topics 按配置顺序；TopicRanking 只保留有命中的话题并按热度排序
	Topics       []TopicStat `json:"topics"`
	TopicRanking []TopicStat `json:"topic_ranking"`
	Words        []WordCount `json:"words"`

	FirstMessageEver     *Memory `json:"first_message_ever,omitempty"`
	FirstMessageInWindow *Memory `json:"first_message_in_window,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// TopWords 返回前 n 个高频词
func (r *Report) TopWords(n int) []WordCount {
	if r == nil {
		return nil
	}
	if n < 0 || n > len(r.Words) {
		n = len(r.Words)
	}
	return r.Words[:n]
}

// Sender 按名称查找发送者统计
func (r *Report) Sender(name string) (SenderStat, bool) {
	if r == nil {
		return SenderStat{}, false
	}
	for _, s := range r.Senders {
		if s.Name == name {
			return s, true
		}
	}
	return SenderStat{}, false
}
