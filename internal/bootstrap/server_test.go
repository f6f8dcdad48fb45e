package bootstrap

import (
	"context"
	"testing"
	"time"

	"go-ems/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAuditLogger struct {
	entries []AuditLog
}

func (r *recordingAuditLogger) Log(_ context.Context, entry AuditLog) {
	r.entries = append(r.entries, entry)
}

func TestShutdown_WritesAuditEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	server := NewHTTPServer(gin.New(), DefaultServerConfig("0"))
	audit := &recordingAuditLogger{}

	err := Shutdown(server, "SIGTERM", audit)
	assert.NoError(t, err)

	if assert.Len(t, audit.entries, 1) {
		assert.Equal(t, ActionServerShutdown, audit.entries[0].Action)
		assert.Equal(t, "SIGTERM", audit.entries[0].Meta["signal"])
	}
}

func TestShutdown_NilAuditLogger(t *testing.T) {
	server := NewHTTPServer(gin.New(), DefaultServerConfig("0"))
	assert.NoError(t, Shutdown(server, "SIGINT", nil))
}

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig("8080")
	server := NewHTTPServer(gin.New(), cfg)

	assert.Equal(t, ":8080", server.Addr)
	assert.Equal(t, 5*time.Second, server.ReadTimeout)
	assert.Equal(t, 10*time.Second, server.WriteTimeout)
	assert.Equal(t, 60*time.Second, server.IdleTimeout)
	assert.IsType(t, &gin.Engine{}, server.Handler)
}

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	l := NewStdoutAuditLogger(zap.New(core))
	l.now = func() time.Time { return time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC) }

	ctx := contextutil.WithRequestID(context.Background(), "rid-1")
	l.Log(ctx, AuditLog{Action: "X", Message: "msg", Meta: map[string]any{"k": "v"}})

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		fields := entries[0].ContextMap()
		assert.Equal(t, "audit", entries[0].LoggerName)
		assert.Equal(t, "X", fields["action"])
		assert.Equal(t, "2024-06-15T08:00:00Z", fields["timestamp"])
		assert.Equal(t, "rid-1", fields["request_id"])
	}
}
