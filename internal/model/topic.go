package model

// Topic 是一个话题及其关键词，关键词顺序即匹配优先级
type Topic struct {
	Name     string   `mapstructure:"name" json:"name" yaml:"name"`
	Keywords []string `mapstructure:"keywords" json:"keywords" yaml:"keywords"`
}
