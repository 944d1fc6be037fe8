package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFromContextFallsBackToGlobal(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Fatal("expected global logger")
	}
}

func TestWithRequestIDTagsEvents(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	ctx := WithContext(context.Background(), &base)
	ctx = WithRequestID(ctx, "req-123")

	FromContext(ctx).Info().Msg("hello")

	if !strings.Contains(buf.String(), `"request_id":"req-123"`) {
		t.Fatalf("expected request_id in log line, got %s", buf.String())
	}
}
