// CourseCompass - Course Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/coursecompass

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// restoreGlobal resets global logger state after tests that call Init.
func restoreGlobal(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		Init(DefaultConfig())
	})
}

func decodeLine(t *testing.T, line string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, line)
	}
	return m
}

func TestInit(t *testing.T) {
	restoreGlobal(t)

	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Timestamp: true, Output: &buf})

	Info().Msg("suppressed")
	Warn().Str("course_id", "CSE 12").Msg("kept")

	out := strings.TrimSpace(buf.String())
	if strings.Contains(out, "suppressed") {
		t.Errorf("info event written at warn level: %s", out)
	}
	m := decodeLine(t, out)
	if m["message"] != "kept" || m["course_id"] != "CSE 12" || m["level"] != "warn" {
		t.Errorf("unexpected event: %v", m)
	}
	if _, ok := m["time"]; !ok {
		t.Error("timestamp missing")
	}
}

func TestInit_Console(t *testing.T) {
	restoreGlobal(t)

	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})
	Info().Msg("console output")

	if !strings.Contains(buf.String(), "console output") {
		t.Errorf("console output missing message: %q", buf.String())
	}
	if strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("console format produced JSON: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  zerolog.Level
		valid bool
	}{
		{"trace", zerolog.TraceLevel, true},
		{"DEBUG", zerolog.DebugLevel, true},
		{"info", zerolog.InfoLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{" error ", zerolog.ErrorLevel, true},
		{"disabled", zerolog.Disabled, true},
		{"verbose", zerolog.InfoLevel, false},
		{"", zerolog.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if got := ValidLevel(tt.input); got != tt.valid {
				t.Errorf("ValidLevel(%q) = %v, want %v", tt.input, got, tt.valid)
			}
		})
	}
}

func TestCtx(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf))
	ctx = ContextWithRequestID(ctx, "req-123")

	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q", got)
	}

	Ctx(ctx).Error().Msg("with request")

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["request_id"] != "req-123" {
		t.Errorf("request_id = %v, want req-123", m["request_id"])
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty", got)
	}
	if a, b := GenerateRequestID(), GenerateRequestID(); a == b || len(a) != 36 {
		t.Errorf("GenerateRequestID() = %q, %q", a, b)
	}
}

func TestSlogHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.WithGroup("service").With("name", "http").Error("service failed",
		"restarts", 3,
		"backoff", 2*time.Second,
		slog.Group("cause", "code", 503),
	)

	m := decodeLine(t, strings.TrimSpace(buf.String()))
	if m["message"] != "service failed" || m["level"] != "error" {
		t.Errorf("unexpected event: %v", m)
	}
	if m["service.name"] != "http" {
		t.Errorf("service.name = %v", m["service.name"])
	}
	if m["service.restarts"] != float64(3) {
		t.Errorf("service.restarts = %v", m["service.restarts"])
	}
	if m["service.cause.code"] != float64(503) {
		t.Errorf("service.cause.code = %v", m["service.cause.code"])
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info enabled on warn logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled on warn logger")
	}
}
