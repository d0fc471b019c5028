// Reelmood - Mood-Based Movie Discovery
// Copyright 2026 Reelmood contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelmood/reelmood

package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogHandlerHandle(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler)

	logger.Info("service started", "port", int64(8080), "tls", false)

	out := buf.String()
	if !strings.Contains(out, `"message":"service started"`) {
		t.Errorf("expected message, got %q", out)
	}
	if !strings.Contains(out, `"port":8080`) {
		t.Errorf("expected port attribute, got %q", out)
	}
	if !strings.Contains(out, `"tls":false`) {
		t.Errorf("expected tls attribute, got %q", out)
	}
}

func TestSlogHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler).With("component", "supervisor")

	logger.Warn("restarting")

	out := buf.String()
	if !strings.Contains(out, `"component":"supervisor"`) {
		t.Errorf("expected inherited attribute, got %q", out)
	}
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("expected warn level, got %q", out)
	}
}

func TestSlogHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandlerWithLogger(NewTestLogger(&buf))
	logger := slog.New(handler).WithGroup("http")

	logger.Info("request", "status", int64(200))

	if !strings.Contains(buf.String(), `"http.status":200`) {
		t.Errorf("expected group-prefixed attribute, got %q", buf.String())
	}
}
