package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// Todas as respostas de erro da API têm o formato {"erro": "..."}.
type HTTPError struct {
	Message string `json:"erro"`
}

func Write(c *gin.Context, status int, code, message string) {
	event := zerolog.Ctx(c.Request.Context()).Warn()
	if status >= http.StatusInternalServerError {
		event = zerolog.Ctx(c.Request.Context()).Error()
	}
	event.
		Str("error_code", code).
		Int("status", status).
		Msg(message)

	c.AbortWithStatusJSON(status, HTTPError{Message: message})
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Internal responde 500 com a mensagem original do erro.
// Erros do PostgreSQL ganham sqlstate/constraint no log.
func Internal(c *gin.Context, code string, err error) {
	logDatabaseDetails(c, err)
	Write(c, http.StatusInternalServerError, code, err.Error())
}

// Business escreve err com o status informado quando ele é um BusinessError.
// Devolve false (sem escrever nada) para qualquer outro erro.
func Business(c *gin.Context, status int, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}
	Write(c, status, be.Code, be.Error())
	return true
}

func Unavailable(c *gin.Context, code string, err error) {
	Write(c, http.StatusServiceUnavailable, code, err.Error())
}

func logDatabaseDetails(c *gin.Context, err error) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return
	}

	zerolog.Ctx(c.Request.Context()).Error().
		Str("sqlstate", pgErr.Code).
		Str("constraint", pgErr.ConstraintName).
		Str("table", pgErr.TableName).
		Msg("database error")
}
