package logx

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()

	prev := *Logger()
	t.Cleanup(func() { *Logger() = prev })

	var buf bytes.Buffer
	require.NoError(t, InitGlobalLogger(Options{Level: level, Out: &buf}))
	return &buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestInitGlobalLogger_InvalidLevel(t *testing.T) {
	err := InitGlobalLogger(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestHelpers_WriteFieldsAndRespectLevel(t *testing.T) {
	buf := captureLogs(t, "info")

	Debug("hidden")
	Info("user registered", "user_id", "42")
	Error(errors.New("boom"), "store failure", "op", "create")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "user registered", lines[0]["message"])
	assert.Equal(t, "42", lines[0]["user_id"])

	assert.Equal(t, "error", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
	assert.Equal(t, "create", lines[1]["op"])
}

func TestHelpers_OddFieldsAreDropped(t *testing.T) {
	buf := captureLogs(t, "debug")

	Warn("odd", "only_key")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "odd", lines[1]["message"])
	assert.NotContains(t, lines[1], "only_key")
}

func TestAnonymizeIP(t *testing.T) {
	tests := map[string]string{
		"192.168.10.42:5555":         "192.168.10.0",
		"10.0.0.7":                   "10.0.0.0",
		"127.0.0.1:80":               "127.0.0.1",
		"[2001:db8:1:2:3:4:5:6]:443": "2001:db8:1:2::",
		"not-an-ip":                  "unknown_ip",
	}

	for in, want := range tests {
		assert.Equal(t, want, anonymizeIP(in), in)
	}
}

func TestRequestLogger(t *testing.T) {
	buf := captureLogs(t, "info")

	var ctxLogger bool
	h := middleware.RequestID(RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxLogger = Ctx(r.Context()) != Logger()
		w.WriteHeader(http.StatusNotFound)
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/users/current", nil)
	req.RemoteAddr = "203.0.113.9:1234"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, ctxLogger)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, float64(http.StatusNotFound), lines[0]["status"])
	assert.Equal(t, "203.0.113.0", lines[0]["remote_ip"])
	assert.Equal(t, "/api/users/current", lines[0]["request_uri"])
	assert.NotEmpty(t, lines[0]["request_id"])
}

func TestCtx_FallsBackToGlobal(t *testing.T) {
	assert.Same(t, Logger(), Ctx(context.Background()))
}
