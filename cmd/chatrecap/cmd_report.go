package chatrecap

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/chatrecap/internal/chatrecap"
	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/internal/model"
	"github.com/sjzar/chatrecap/internal/output"
)

// 摘要中展示的高频词数量
const summaryTopWords = 20

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the chat report file",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	report, err := chatrecap.New(cfg).Rebuild()
	if err != nil {
		// 窗口内没有消息是预期结果，提示后正常退出
		if errors.Is(err, errors.ErrNoData) {
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️ %s (%s ~ %s)\n", errors.ErrNoData.Message, cfg.Window.Start, cfg.Window.End)
			return nil
		}
		return err
	}

	path, err := output.WriteFile(cfg.OutputDir, report, cfg.Format)
	if err != nil {
		return err
	}
	log.Info().Str("path", path).Msg("report saved")

	printSummary(cmd.OutOrStdout(), report)
	return nil
}

func printSummary(w io.Writer, r *model.Report) {
	fmt.Fprintf(w, "统计范围: %s\n", r.Window)
	fmt.Fprintf(w, "参与者: %s & %s\n", r.Participants.Self, r.Participants.Other)
	fmt.Fprintf(w, "消息总数: %d，总字数: %d，日均 %.1f 条\n", r.TotalMessages, r.TotalChars, r.DailyAverage)
	for _, s := range r.Senders {
		fmt.Fprintf(w, "  %s: %d 条 / %d 字\n", s.Name, s.Messages, s.Chars)
	}

	if len(r.TopicRanking) > 0 {
		fmt.Fprintln(w, "话题排行:")
		for _, t := range r.TopicRanking {
			kws := make([]string, 0, len(t.Keywords))
			for _, k := range t.Keywords {
				kws = append(kws, fmt.Sprintf("%s(%d)", k.Keyword, k.Hits))
			}
			fmt.Fprintf(w, "  %s: %d  %s\n", t.Name, t.Count, strings.Join(kws, " "))
		}
	}

	if words := r.TopWords(summaryTopWords); len(words) > 0 {
		parts := make([]string, 0, len(words))
		for _, wc := range words {
			parts = append(parts, fmt.Sprintf("%s(%d)", wc.Word, wc.Count))
		}
		fmt.Fprintf(w, "高频词 Top %d: %s\n", len(words), strings.Join(parts, " "))
	}

	if m := r.FirstMessageInWindow; m != nil {
		fmt.Fprintf(w, "范围内第一条: [%s] %s: %s\n", m.Time.Format("2006-01-02 15:04"), m.Sender, m.Display)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}
