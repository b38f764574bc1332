package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/sjzar/chatrecap/internal/errors"
)

// POST /api/v1/actions/rebuild 重新读取导出文件并生成报告
func (s *Service) handleActionRebuild(c *gin.Context) {
	if s.control == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "control service unavailable"})
		return
	}
	r, err := s.control.Rebuild()
	if err != nil {
		if errors.Is(err, errors.ErrNoData) {
			log.Warn().Msg("rebuild skipped: " + err.Error())
		} else {
			log.Err(err).Msg("failed to rebuild report via api")
		}
		errors.Err(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "id": r.Meta.ID, "total_messages": r.TotalMessages})
}
