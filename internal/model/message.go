package model

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	MessageTypeText   = "文本消息"
	MessageTypeSystem = "系统消息"

	// SenderUnknown 导出记录缺少 senderDisplayName 时的占位名
	SenderUnknown = "未知"

	// IsSendOutgoing 是 isSend 字段表示“我发送”的取值
	IsSendOutgoing = 1
)

// RawEntry 对应导出文件中的一条原始记录
// 除 createTime 外的字段保留解码后的原始值，类型不符时只影响该字段，不会丢弃整条记录
type RawEntry struct {
	// CreateTime 为秒级时间戳，允许带小数或写成字符串
	CreateTime        float64     `mapstructure:"createTime" json:"createTime"`
	SenderDisplayName interface{} `mapstructure:"senderDisplayName" json:"senderDisplayName,omitempty"`
	Type              interface{} `mapstructure:"type" json:"type,omitempty"`
	Content           interface{} `mapstructure:"content" json:"content,omitempty"`
	IsSend            interface{} `mapstructure:"isSend" json:"isSend,omitempty"`
}

// Timestamp 返回记录时间；时间戳缺失或为 0 时 ok 为 false
func (e *RawEntry) Timestamp(loc *time.Location) (time.Time, bool) {
	if e == nil || e.CreateTime == 0 || math.IsNaN(e.CreateTime) || math.IsInf(e.CreateTime, 0) {
		return time.Time{}, false
	}
	sec, frac := math.Modf(e.CreateTime)
	return time.Unix(int64(sec), int64(frac*1e9)).In(loc), true
}

// SenderName 缺失时返回 SenderUnknown
func (e *RawEntry) SenderName() string {
	return scalarString(e.SenderDisplayName, SenderUnknown)
}

func (e *RawEntry) MessageType() string {
	return scalarString(e.Type, "")
}

// Text 返回消息正文，非字符串内容视为空文本
func (e *RawEntry) Text() string {
	if s, ok := e.Content.(string); ok {
		return s
	}
	return ""
}

// IsOutgoing 判断 isSend 是否等于 1；布尔 true 和字符串 "1" 同样视为 1，无法识别的值一律按对方发送处理
func (e *RawEntry) IsOutgoing() bool {
	switch v := e.IsSend.(type) {
	case bool:
		return v
	case float64:
		return v == IsSendOutgoing
	case int:
		return v == IsSendOutgoing
	case int64:
		return v == IsSendOutgoing
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && f == IsSendOutgoing
	default:
		return false
	}
}

func scalarString(v interface{}, def string) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return def
	}
}

// Message 是归一化之后的消息，创建后不再修改
type Message struct {
	Time    time.Time `json:"time"`
	Sender  string    `json:"sender"`
	Content string    `json:"content"`
	Type    string    `json:"type"`
	IsSelf  bool      `json:"is_self"`
}

func (m *Message) IsText() bool {
	return m != nil && m.Type == MessageTypeText
}

func (m *Message) IsSystem() bool {
	return m != nil && m.Type == MessageTypeSystem
}

// DisplayContent 返回报告中展示的文本，非文本消息显示为 [类型]
func (m *Message) DisplayContent() string {
	if m == nil {
		return "无内容"
	}
	if !m.IsText() {
		return "[" + m.Type + "]"
	}
	return m.Content
}
