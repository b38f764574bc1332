package model

// SenderStat 单个发送者在窗口内的消息数与字数
type SenderStat struct {
	Name     string `json:"name"`
	Messages int    `json:"messages"`
	Chars    int    `json:"chars"`
}

// TypeStat 消息类型分布，例如：{"文本消息", 123}
type TypeStat struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// DayCount 每日消息数
type DayCount struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int    `json:"count"`
}

// HourCount 按小时聚合的消息数
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// KeywordHit 话题下单个关键词的命中次数
type KeywordHit struct {
	Keyword string `json:"keyword"`
	Hits    int    `json:"hits"`
}

// TopicStat 话题热度，Keywords 按命中次数降序
type TopicStat struct {
	Name     string       `json:"name"`
	Count    int          `json:"count"`
	Keywords []KeywordHit `json:"keywords"`
}

// WordCount 高频词
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
