package audit

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	ActionCreated = "criado"
	ActionUpdated = "atualizado"
	ActionDeleted = "excluido"
	ActionLogin   = "login"
)

type Event struct {
	Action   string
	Entity   string
	EntityID uint
	Metadata map[string]any
}

// Logger registra as operações que alteram dados. É síncrono e nunca
// falha a requisição: um evento é apenas uma linha de log estruturada.
type Logger struct {
	log zerolog.Logger
}

func New(l zerolog.Logger) *Logger {
	return &Logger{log: l}
}

func (l *Logger) Log(ctx context.Context, ev Event) {
	base := &l.log
	// o logger da requisição já carrega o request_id
	if reqLog := zerolog.Ctx(ctx); reqLog.GetLevel() != zerolog.Disabled {
		base = reqLog
	}

	e := base.Info().
		Str("component", "audit").
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Uint("entity_id", ev.EntityID)

	if len(ev.Metadata) > 0 {
		e = e.Fields(ev.Metadata)
	}

	e.Msg(ev.Entity + "_" + ev.Action)
}
