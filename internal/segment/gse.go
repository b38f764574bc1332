package segment

import (
	"fmt"
	"sync"

	"github.com/go-ego/gse"
)

// GSE 基于词典 + HMM 的中文分词
type GSE struct {
	mu  sync.Mutex
	seg *gse.Segmenter
}

// NewGSE 加载 gse 内置（embed）的简体中文词典，不依赖外部文件
func NewGSE() (*GSE, error) {
	seg := &gse.Segmenter{}
	if err := seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("load gse dictionary: %w", err)
	}
	return &GSE{seg: seg}, nil
}

func (g *GSE) Name() string { return NameGSE }

// Cut 精确模式分词，开启 HMM 以识别未登录词
func (g *GSE) Cut(text string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.seg.Cut(text, true)
}
