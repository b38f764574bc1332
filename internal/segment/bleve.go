package segment

import (
	"errors"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis"
	"github.com/blevesearch/bleve/v2/analysis/lang/cjk"
)

// Bleve 使用 Bleve 的 CJK 分析器切词（Unicode 分词 + 宽度归一 + 小写 + 二元组）
type Bleve struct {
	analyze func([]byte) analysis.TokenStream
}

func NewBleve() (*Bleve, error) {
	indexMapping := bleve.NewIndexMapping()
	analyzer := indexMapping.AnalyzerNamed(cjk.AnalyzerName)
	if analyzer == nil {
		return nil, errors.New("bleve cjk analyzer not registered")
	}
	return &Bleve{analyze: analyzer.Analyze}, nil
}

func (b *Bleve) Name() string { return NameBleve }

func (b *Bleve) Cut(text string) []string {
	stream := b.analyze([]byte(text))
	tokens := make([]string, 0, len(stream))
	for _, tok := range stream {
		tokens = append(tokens, string(tok.Term))
	}
	return tokens
}
