// Package logger monta o zerolog usado pela API e o adaptador para o GORM.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// New cria o logger principal. Em ambiente local a saída é legível
// (console); nos demais, JSON em stdout.
func New(env, level string) zerolog.Logger {
	return NewWithWriter(env, level, os.Stdout)
}

func NewWithWriter(env, level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	out := w
	if env == "local" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("env", env).
		Logger()
}

// Gorm devolve um logger do GORM que escreve pelo zerolog.
// Consultas lentas e erros aparecem; "record not found" é ignorado.
func Gorm(l *zerolog.Logger) gormlogger.Interface {
	w := gormWriter{
		l:     l.With().Str("component", "gorm").Logger(),
		level: zerolog.WarnLevel,
	}

	level := gormlogger.Warn
	if l.GetLevel() <= zerolog.DebugLevel {
		level = gormlogger.Info
		w.level = zerolog.DebugLevel
	}

	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

// zerolog.Logger.Printf escreve sempre em debug; o GORM precisa de um nível fixo.
type gormWriter struct {
	l     zerolog.Logger
	level zerolog.Level
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.l.WithLevel(w.level).Msgf(format, args...)
}
