package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	log := New(buf, false)
	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("New(debug=false).GetLevel() = %v, want %v", log.GetLevel(), zerolog.InfoLevel)
	}
	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("New(debug=false) wrote %q, want only the info message", out)
	}

	if got := New(buf, true).GetLevel(); got != zerolog.DebugLevel {
		t.Errorf("New(debug=true).GetLevel() = %v, want %v", got, zerolog.DebugLevel)
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Str("account", "A").Msg("test")
	if !strings.Contains(buf.String(), `"account":"A"`) {
		t.Errorf("FromContext() logger wrote %q, want the account field", buf.String())
	}
}

func TestFromContext_Default(t *testing.T) {
	log := FromContext(context.Background())
	if log.GetLevel() != zerolog.Disabled {
		t.Errorf("FromContext(empty).GetLevel() = %v, want %v", log.GetLevel(), zerolog.Disabled)
	}
}
