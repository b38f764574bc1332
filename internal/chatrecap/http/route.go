package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sjzar/chatrecap/internal/errors"
	"github.com/sjzar/chatrecap/internal/model"
	"github.com/sjzar/chatrecap/internal/output"
)

const ReportPath = "/api/v1/report"

func (s *Service) initRouter() {
	s.initBaseRouter()
	s.initAPIRouter()
}

func (s *Service) initBaseRouter() {
	s.router.GET("/health", func(ctx *gin.Context) { ctx.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	s.router.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, ReportPath) })
	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}

func (s *Service) initAPIRouter() {
	api := s.router.Group("/api/v1")
	{
		report := api.Group("/report", s.loadReportMiddleware())
		report.GET("", s.handleReport)
		report.GET("/senders", s.handleSenders)
		report.GET("/types", s.handleTypes)
		report.GET("/daily", s.handleDaily)
		report.GET("/hourly", s.handleHourly)
		report.GET("/topics", s.handleTopics)
		report.GET("/words", s.handleWords)
		report.GET("/memories", s.handleMemories)

		api.POST("/actions/rebuild", s.handleActionRebuild)
	}
}

const reportKey = "report"

// loadReportMiddleware 取出当前报告放入上下文；报告未就绪时直接返回 503
func (s *Service) loadReportMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.control == nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "control service unavailable"})
			return
		}
		r, err := s.control.Report()
		if err != nil {
			errors.Err(c, err)
			c.Abort()
			return
		}
		c.Set(reportKey, r)
		c.Next()
	}
}

func reportFrom(c *gin.Context) *model.Report {
	return c.MustGet(reportKey).(*model.Report)
}

// GET /api/v1/report?format=(json|yaml)
func (s *Service) handleReport(c *gin.Context) {
	r := reportFrom(c)
	format, err := output.NormalizeFormat(c.Query("format"))
	if err != nil {
		errors.Err(c, err)
		return
	}
	switch format {
	case output.FormatYAML:
		b, err := output.MarshalYAML(r)
		if err != nil {
			errors.Err(c, err)
			return
		}
		c.Data(http.StatusOK, "application/yaml; charset=utf-8", b)
	default:
		if c.Query("download") == "1" {
			c.Header("Content-Disposition", "attachment; filename="+output.BaseName+".json")
		}
		c.JSON(http.StatusOK, r)
	}
}

// GET /api/v1/report/senders?name=小明
func (s *Service) handleSenders(c *gin.Context) {
	r := reportFrom(c)
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		stat, ok := r.Sender(name)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "sender not found: " + name})
			return
		}
		c.JSON(http.StatusOK, stat)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"participants":   r.Participants,
		"senders":        r.Senders,
		"total_messages": r.TotalMessages,
		"total_chars":    r.TotalChars,
	})
}

func (s *Service) handleTypes(c *gin.Context) {
	c.JSON(http.StatusOK, reportFrom(c).Types)
}

func (s *Service) handleDaily(c *gin.Context) {
	r := reportFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"window":        r.Window,
		"daily":         r.Daily,
		"daily_average": r.DailyAverage,
	})
}

func (s *Service) handleHourly(c *gin.Context) {
	c.JSON(http.StatusOK, reportFrom(c).Hourly)
}

// GET /api/v1/report/topics?ranked=1
func (s *Service) handleTopics(c *gin.Context) {
	r := reportFrom(c)
	if ranked, _ := strconv.ParseBool(c.DefaultQuery("ranked", "false")); ranked {
		c.JSON(http.StatusOK, r.TopicRanking)
		return
	}
	c.JSON(http.StatusOK, r.Topics)
}

// GET /api/v1/report/words?limit=20
func (s *Service) handleWords(c *gin.Context) {
	r := reportFrom(c)
	limit := -1
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			errors.Err(c, errors.InvalidArg("limit"))
			return
		}
		limit = n
	}
	c.JSON(http.StatusOK, r.TopWords(limit))
}

func (s *Service) handleMemories(c *gin.Context) {
	r := reportFrom(c)
	c.JSON(http.StatusOK, gin.H{
		"first_message_ever":      r.FirstMessageEver,
		"first_message_in_window": r.FirstMessageInWindow,
	})
}
