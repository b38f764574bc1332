package analysis

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/internal/model"
)

const (
	DefaultTopWords    = 100
	DefaultTopKeywords = 5
)

// Options 是一次报告计算所需的全部静态配置
type Options struct {
	Window      model.Window
	Topics      []model.Topic
	StopWords   StopWords
	TopWords    int
	TopKeywords int

	// Segmenter 为 nil 时跳过高频词统计，并在报告中记录警告
	Segmenter Segmenter

	Meta model.ReportMeta
	Now  func() time.Time
}

// Build 从原始记录计算年度报告
// 窗口内没有任何消息时返回 errors.ErrNoData
func Build(entries []*model.RawEntry, opts Options) (*model.Report, error) {
	loc := opts.Window.Start.Location()

	messages := Normalize(entries, loc)
	// 史上第一条消息要在窗口过滤前取
	firstEver := FirstMessageEver(messages)

	windowed := FilterWindow(messages, opts.Window)
	log.Debug().
		Int("entries", len(entries)).
		Int("normalized", len(messages)).
		Int("windowed", len(windowed)).
		Str("window", opts.Window.String()).
		Msg("messages filtered")
	if len(windowed) == 0 {
		return nil, errors.ErrNoData
	}

	return Assemble(windowed, firstEver, opts), nil
}

// Assemble 把各项统计打包成报告，windowed 必须非空
func Assemble(windowed []*model.Message, firstEver *model.Message, opts Options) *model.Report {
	topWords := opts.TopWords
	if topWords <= 0 {
		topWords = DefaultTopWords
	}
	topKeywords := opts.TopKeywords
	if topKeywords <= 0 {
		topKeywords = DefaultTopKeywords
	}

	senders := CountBySender(windowed)
	daily := DailyCounts(windowed, opts.Window)
	topics := ClassifyTopics(windowed, opts.Topics, topKeywords)

	report := &model.Report{
		Meta:          opts.Meta,
		Window:        opts.Window,
		Participants:  ResolveParticipants(windowed),
		TotalMessages: TotalMessages(senders),
		TotalChars:    TotalChars(senders),
		Senders:       senders,
		Types:         CountByType(windowed),
		Daily:         daily,
		Hourly:        HourlyCounts(windowed, opts.Window),
		Topics:        topics,
		TopicRanking:  RankTopics(topics),
		Words:         []model.WordCount{},

		FirstMessageEver:     model.NewMemory(firstEver),
		FirstMessageInWindow: model.NewMemory(windowed[0]),
	}
	if len(daily) > 0 {
		report.DailyAverage = float64(report.TotalMessages) / float64(len(daily))
	}

	if opts.Segmenter != nil {
		report.Words = WordFrequency(windowed, opts.Segmenter, opts.StopWords, topWords)
		report.Meta.Segmenter = opts.Segmenter.Name()
	} else {
		report.Warnings = append(report.Warnings, "word segmenter unavailable, word frequency skipped")
	}

	if report.Meta.ID == "" {
		report.Meta.ID = uuid.NewString()
	}
	if report.Meta.GeneratedAt.IsZero() {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		report.Meta.GeneratedAt = now()
	}
	return report
}
