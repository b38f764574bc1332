package chatrecap

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/sjzar/chatrecap/internal/analysis"
	"github.com/sjzar/chatrecap/internal/chatrecap/conf"
	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/internal/model"
	"github.com/sjzar/chatrecap/internal/segment"
	"github.com/sjzar/chatrecap/internal/source"
)

// SegmenterFactory 按名称创建分词器，测试中可替换
type SegmenterFactory func(name string) (analysis.Segmenter, error)

// App 负责一次完整的报告计算：读取导出、分词器初始化、统计
type App struct {
	conf       *conf.Config
	newSegment SegmenterFactory

	// 分词器加载词典较慢，成功创建后复用
	segMu sync.Mutex
	seg   analysis.Segmenter

	mu     sync.RWMutex
	report *model.Report
}

func New(cfg *conf.Config) *App {
	return &App{
		conf:       cfg,
		newSegment: segment.New,
	}
}

// WithSegmenterFactory 替换分词器工厂
func (a *App) WithSegmenterFactory(f SegmenterFactory) *App {
	a.segMu.Lock()
	a.newSegment = f
	a.seg = nil
	a.segMu.Unlock()
	return a
}

func (a *App) GetHTTPAddr() string {
	return a.conf.HTTPAddr
}

// Report 返回最近一次生成的报告，尚未生成时返回 ErrReportNotReady
func (a *App) Report() (*model.Report, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.report == nil {
		return nil, errors.ErrReportNotReady
	}
	return a.report, nil
}

// segmenter 返回缓存的分词器，首次调用时创建；创建失败返回 nil，下次重建时再尝试
func (a *App) segmenter() analysis.Segmenter {
	a.segMu.Lock()
	defer a.segMu.Unlock()
	if a.seg != nil {
		return a.seg
	}
	seg, err := a.newSegment(a.conf.Segmenter)
	if err != nil {
		log.Warn().Err(errors.SegmenterInit(a.conf.Segmenter, err)).Msg("word frequency will be skipped")
		return nil
	}
	a.seg = seg
	return seg
}

// Rebuild 重新读取导出文件并生成报告
// 窗口内没有消息时返回 errors.ErrNoData，已有报告保持不变
func (a *App) Rebuild() (*model.Report, error) {
	opts, err := a.conf.AnalysisOptions()
	if err != nil {
		return nil, err
	}

	exp, err := source.Load(a.conf.Input)
	if err != nil {
		return nil, err
	}

	// 分词器不可用不影响其它统计，只跳过高频词
	opts.Segmenter = a.segmenter()
	opts.Meta = model.ReportMeta{
		Source:      exp.Path,
		Fingerprint: exp.Fingerprint,
	}

	report, err := analysis.Build(exp.Entries, opts)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	a.report = report
	a.mu.Unlock()

	log.Info().
		Str("id", report.Meta.ID).
		Str("window", report.Window.String()).
		Int("messages", report.TotalMessages).
		Int("chars", report.TotalChars).
		Msg("report generated")
	return report, nil
}
