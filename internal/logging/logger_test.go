package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestConsoleFormatLine(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.Info("library created", "library", "Movies", "item_id", "abc-123")

	line := buf.String()
	if strings.Contains(line, "\x1b[") {
		t.Fatalf("non-terminal writer must not receive color codes: %q", line)
	}
	if !strings.Contains(line, "INFO library created") {
		t.Fatalf("missing level and message: %q", line)
	}
	if !strings.Contains(line, "library=Movies") || !strings.Contains(line, "item_id=abc-123") {
		t.Fatalf("missing attributes: %q", line)
	}
}

func TestConsoleQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.Warn("skipping", "reason", "no folders declared")

	if !strings.Contains(buf.String(), `reason="no folders declared"`) {
		t.Fatalf("value with spaces not quoted: %q", buf.String())
	}
}

func TestConsoleLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.Info("hidden")
	logger.Debug("hidden too")
	logger.Warn("visible")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 || !strings.Contains(lines[0], "visible") {
		t.Fatalf("level filter not applied: %q", buf.String())
	}
}

func TestConsoleGroupsQualifyKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.WithGroup("server").With("url", "http://x:8096").Info("connected")

	if !strings.Contains(buf.String(), "server.url=http://x:8096") {
		t.Fatalf("group prefix missing: %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.Info("triggers written", "task", "Scan Media Library")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if record["msg"] != "triggers written" {
		t.Fatalf("unexpected message field: %v", record["msg"])
	}
	if record["task"] != "Scan Media Library" {
		t.Fatalf("unexpected task field: %v", record["task"])
	}
	if _, ok := record["ts"].(string); !ok {
		t.Fatalf("missing timestamp: %v", record)
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	if _, err := New(Options{Format: "logfmt"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "chatty", Writer: &buf})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("visible")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "visible") {
		t.Fatalf("unknown level should behave as info: %q", buf.String())
	}
}
