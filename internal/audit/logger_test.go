package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	return out
}

func TestLogWritesEvent(t *testing.T) {
	var buf bytes.Buffer
	a := New(zerolog.New(&buf))

	a.Log(context.Background(), Event{
		Action:   ActionCreated,
		Entity:   "usuario",
		EntityID: 42,
		Metadata: map[string]any{"nivel": "admin"},
	})

	out := decodeLine(t, &buf)
	if out["component"] != "audit" || out["action"] != "criado" || out["entity"] != "usuario" {
		t.Fatalf("unexpected event: %v", out)
	}
	if out["entity_id"] != float64(42) || out["nivel"] != "admin" {
		t.Fatalf("unexpected event: %v", out)
	}
	if out["message"] != "usuario_criado" {
		t.Fatalf("unexpected message: %v", out["message"])
	}
}

func TestLogPrefersRequestLogger(t *testing.T) {
	var base, req bytes.Buffer
	a := New(zerolog.New(&base))

	reqLog := zerolog.New(&req).With().Str("request_id", "abc").Logger()
	ctx := reqLog.WithContext(context.Background())

	a.Log(ctx, Event{Action: ActionDeleted, Entity: "propriedade", EntityID: 1})

	if base.Len() != 0 {
		t.Fatalf("base logger should not be used: %s", base.String())
	}
	if out := decodeLine(t, &req); out["request_id"] != "abc" {
		t.Fatalf("expected request_id in event: %v", out)
	}
}
