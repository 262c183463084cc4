package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/rental-booking/internal/httperr"
)

// RequestLogger coloca no contexto da requisição um logger com o
// request_id e escreve uma linha por requisição ao final.
// Deve vir depois de RequestID.
func RequestLogger(base zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqLog := base.With().
			Str("request_id", c.GetString(ContextRequestID)).
			Logger()
		c.Request = c.Request.WithContext(reqLog.WithContext(c.Request.Context()))

		c.Next()

		status := c.Writer.Status()

		var e *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			e = reqLog.Error()
		case status >= http.StatusBadRequest:
			e = reqLog.Warn()
		default:
			e = reqLog.Info()
		}

		e.
			Int("status", status).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Dur("latency", time.Since(start)).
			Str("ip", c.ClientIP()).
			Msg("API")
	}
}

// Recovery transforma panics em 500 no formato padrão de erro.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		httperr.Write(c, http.StatusInternalServerError, "panic", fmt.Sprint(recovered))
	})
}
