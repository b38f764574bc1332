package chatrecap

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sjzar/chatrecap/internal/chatrecap"
	"github.com/sjzar/chatrecap/internal/chatrecap/http"
	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/pkg/util"
)

var serveOpen bool

func init() {
	serveCmd.Flags().StringP("http-addr", "a", "", "http listen address")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the report in the default browser")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Generate the report and serve it over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	a := chatrecap.New(cfg)
	if _, err := a.Rebuild(); err != nil {
		if !errors.Is(err, errors.ErrNoData) {
			return err
		}
		// 服务照常启动，可在更新导出文件后通过 rebuild 接口重新生成
		log.Warn().Err(err).Msg("report not generated yet")
	}

	svc := http.NewService(a, a)
	if err := svc.Start(); err != nil {
		return err
	}

	url := util.ComposeURL(cfg.HTTPAddr, http.ReportPath, util.LANIPv4)
	log.Info().Str("url", url).Msg("report is being served")
	if serveOpen {
		if err := util.OpenBrowser(url); err != nil {
			log.Warn().Err(err).Msg("open browser failed")
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	return svc.Stop()
}
