package conf

import (
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/sjzar/chatrecap/internal/analysis"
	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/internal/model"
	"github.com/sjzar/chatrecap/pkg/util"
)

const (
	DefaultInput     = "chat.json"
	DefaultOutputDir = "."
	DefaultFormat    = "json"
	DefaultTimezone  = "Local"
	DefaultStart     = "2025-01-01"
	DefaultEnd       = "2025-12-25"
	DefaultSegmenter = "gse"
	DefaultHTTPAddr  = "127.0.0.1:5031"
)

// WindowConfig 统计窗口，日期格式 YYYY-MM-DD，两端均包含
type WindowConfig struct {
	Start string `mapstructure:"start" json:"start"`
	End   string `mapstructure:"end" json:"end"`
}

// Config 是 chatrecap 的全部配置
type Config struct {
	Input       string        `mapstructure:"input" json:"input"`
	OutputDir   string        `mapstructure:"output_dir" json:"output_dir"`
	Format      string        `mapstructure:"format" json:"format"`
	Timezone    string        `mapstructure:"timezone" json:"timezone"`
	Window      WindowConfig  `mapstructure:"window" json:"window"`
	TopWords    int           `mapstructure:"top_words" json:"top_words"`
	TopKeywords int           `mapstructure:"top_keywords" json:"top_keywords"`
	Segmenter   string        `mapstructure:"segmenter" json:"segmenter"`
	StopWords   []string      `mapstructure:"stop_words" json:"stop_words"`
	Topics      []model.Topic `mapstructure:"topics" json:"topics"`
	HTTPAddr    string        `mapstructure:"http_addr" json:"http_addr"`
	Debug       bool          `mapstructure:"debug" json:"debug"`
}

// Defaults 返回内置默认配置
func Defaults() *Config {
	return &Config{
		Input:       DefaultInput,
		OutputDir:   DefaultOutputDir,
		Format:      DefaultFormat,
		Timezone:    DefaultTimezone,
		Window:      WindowConfig{Start: DefaultStart, End: DefaultEnd},
		TopWords:    analysis.DefaultTopWords,
		TopKeywords: analysis.DefaultTopKeywords,
		Segmenter:   DefaultSegmenter,
		StopWords:   append([]string(nil), analysis.DefaultStopWords...),
		Topics:      cloneTopics(analysis.DefaultTopics),
		HTTPAddr:    DefaultHTTPAddr,
	}
}

func cloneTopics(src []model.Topic) []model.Topic {
	out := make([]model.Topic, 0, len(src))
	for _, t := range src {
		out = append(out, model.Topic{Name: t.Name, Keywords: append([]string(nil), t.Keywords...)})
	}
	return out
}

// Location 解析配置的时区
func (c *Config) Location() (*time.Location, error) {
	loc, err := util.LoadLocation(c.Timezone)
	if err != nil {
		return nil, errors.ConfigInvalid("timezone", err)
	}
	return loc, nil
}

// ReportWindow 解析统计窗口，结束日期早于开始日期视为非法
func (c *Config) ReportWindow() (model.Window, error) {
	loc, err := c.Location()
	if err != nil {
		return model.Window{}, err
	}
	start, ok := util.ParseDate(c.Window.Start, loc)
	if !ok {
		return model.Window{}, errors.InvalidArg("window.start")
	}
	end, ok := util.ParseDate(c.Window.End, loc)
	if !ok {
		return model.Window{}, errors.InvalidArg("window.end")
	}
	if end.Before(start) {
		return model.Window{}, errors.InvalidArg("window")
	}
	return model.NewWindow(start, end, loc), nil
}

// Validate 检查配置；空的话题表或停用词表是合法的，只会让对应统计为 0
func (c *Config) Validate() error {
	if c.Input == "" {
		return errors.InvalidArg("input")
	}
	if _, err := c.ReportWindow(); err != nil {
		return err
	}
	if c.TopWords < 0 {
		return errors.InvalidArg("top_words")
	}
	if c.TopKeywords < 0 {
		return errors.InvalidArg("top_keywords")
	}
	for i, t := range c.Topics {
		if t.Name == "" {
			return errors.ConfigInvalid("topics", errors.InvalidArg("name of topic #"+strconv.Itoa(i)))
		}
	}
	return nil
}

// AnalysisOptions 组装分析所需的静态参数（不含分词器）
func (c *Config) AnalysisOptions() (analysis.Options, error) {
	w, err := c.ReportWindow()
	if err != nil {
		return analysis.Options{}, err
	}
	return analysis.Options{
		Window:      w,
		Topics:      c.Topics,
		StopWords:   analysis.NewStopWords(c.StopWords),
		TopWords:    c.TopWords,
		TopKeywords: c.TopKeywords,
	}, nil
}
