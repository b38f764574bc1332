package chatrecap

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/chatrecap/internal/chatrecap/conf"
	"github.com/sjzar/chatrecap/pkg/util"
)

var (
	cfgFile        string
	debug          bool
	extraStopWords string
)

// 命令行参数与配置项的对应关系，命令行优先级最高
var flagKeys = map[string]string{
	"input":      "input",
	"start":      "window.start",
	"end":        "window.end",
	"timezone":   "timezone",
	"segmenter":  "segmenter",
	"format":     "format",
	"output-dir": "output_dir",
	"http-addr":  "http_addr",
}

var rootCmd = &cobra.Command{
	Use:   "chatrecap",
	Short: "chatrecap 聊天记录年度回顾",
	Long: `chatrecap 读取导出的双人聊天记录（JSON，可为 gzip/zstd/lz4 压缩），
统计指定日期范围内的消息数量、活跃时段、话题与高频词，生成报告数据。`,
	Example:           `chatrecap report -i chat.json --start 2025-01-01 --end 2025-12-25`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runReport,
}

func init() {
	// windows 下允许直接双击运行
	cobra.MousetrapHelpText = ""

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default ./chatrecap.yaml or $HOME/.chatrecap/chatrecap.yaml)")
	pf.BoolVar(&debug, "debug", false, "debug log")
	pf.StringP("input", "i", "", "chat export file")
	pf.StringP("start", "s", "", "window start date, YYYY-MM-DD")
	pf.StringP("end", "e", "", "window end date, YYYY-MM-DD")
	pf.String("timezone", "", "IANA timezone used for dates and hours, e.g. Asia/Shanghai")
	pf.String("segmenter", "", "word segmenter: gse | bleve")
	pf.StringP("format", "f", "", "report format: json | yaml")
	pf.StringP("output-dir", "o", "", "directory to write the report file into")
	pf.StringVar(&extraStopWords, "stop-words", "", "extra stop words, comma separated, appended to the configured list")

	rootCmd.AddCommand(reportCmd, serveCmd, versionCmd)
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Err(err).Msg("command execution failed")
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, args []string) error {
	initLog(debug)
	conf.LoadDotEnv()
	return nil
}

// loadConfig 按 默认值 < 配置文件 < 环境变量 < 命令行 的顺序合并配置
func loadConfig(cmd *cobra.Command) (*conf.Config, error) {
	v := conf.NewViper(cfgFile)
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, err
		}
	}

	cfg, err := conf.Load(v)
	if err != nil {
		return nil, err
	}
	if extraStopWords != "" {
		cfg.StopWords = append(cfg.StopWords, util.Str2List(extraStopWords, ",")...)
	}
	if cfg.Debug && !debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Interface("config", cfg).Msg("config resolved")
	return cfg, nil
}
