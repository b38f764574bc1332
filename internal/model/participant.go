package model

const (
	DefaultSelfName  = "我"
	DefaultOtherName = "朋友"
)

// Participants 记录双方在报告中的显示名
type Participants struct {
	Self  string `json:"self"`
	Other string `json:"other"`
}

func DefaultParticipants() Participants {
	return Participants{Self: DefaultSelfName, Other: DefaultOtherName}
}
