package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/doeshing/cosmo-health/internal/domain"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":  logrus.DebugLevel,
		"WARN":   logrus.WarnLevel,
		" info ": logrus.InfoLevel,
		"":       logrus.InfoLevel,
		"bogus":  logrus.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(domain.LogSettings{Level: "info", Format: "json"}, false, &buf)

	log.Error("chat completion failed", errors.New("timeout"), map[string]interface{}{"request_id": "abc"})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["request_id"] != "abc" || entry["error"] != "timeout" || entry["msg"] != "chat completion failed" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(domain.LogSettings{Level: "warn"}, false, &buf)
	log.Info("hidden", nil)
	log.Debug("hidden", nil)
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	verbose := New(domain.LogSettings{Level: "warn"}, true, &buf)
	verbose.Debug("shown", nil)
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("verbose logger dropped debug entry: %q", buf.String())
	}
}
