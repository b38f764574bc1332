package errors

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Err 将错误写回客户端，状态码取自 *Error.Code
func Err(c *gin.Context, err error) {
	if err == nil {
		return
	}
	code := GetCode(err)
	if code < http.StatusBadRequest {
		code = http.StatusInternalServerError
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

// RecoveryMiddleware 捕获 handler 中的 panic，避免进程退出
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Str("path", c.Request.URL.Path).Msgf("panic recovered: %v", r)
				Err(c, New(fmt.Errorf("%v", r), http.StatusInternalServerError, "internal server error"))
				c.Abort()
			}
		}()
		c.Next()
	}
}

// ErrorHandlerMiddleware 处理 handler 通过 c.Error 挂载但尚未写出的错误
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		Err(c, c.Errors.Last().Err)
	}
}
