package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()

	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry LogEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Failed to decode log line %q: %v", line, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("Level.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{"warning", WarnLevel},
		{"ERROR", ErrorLevel},
		{"", InfoLevel},
		{"verbose", InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestJSONLogger_FieldsAndFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Debug("dropped")
	logger.Info("trial finished", Seed(7), CommunityID(2), Conductance(0.25))

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Level != "INFO" || entry.Message != "trial finished" {
		t.Errorf("Unexpected entry header: %+v", entry)
	}
	// JSON numbers decode as float64
	if entry.Fields["seed"] != float64(7) || entry.Fields["community_id"] != float64(2) {
		t.Errorf("Unexpected fields: %v", entry.Fields)
	}
	if entry.Fields["conductance"] != 0.25 {
		t.Errorf("Expected conductance 0.25, got %v", entry.Fields["conductance"])
	}
}

func TestJSONLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := NewJSONLogger(&buf, DebugLevel)
	child := base.With(RunID("abc"), Component("evaluation"))

	child.Debug("selected seeds", Count(3), Component("harness"))
	base.Info("no preset fields")

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}

	if entries[0].Fields["run_id"] != "abc" {
		t.Errorf("Child should carry run_id, got %v", entries[0].Fields)
	}
	if entries[0].Fields["component"] != "harness" {
		t.Errorf("Call-site field should override preset, got %v", entries[0].Fields["component"])
	}
	if entries[1].Fields != nil {
		t.Errorf("Parent should not inherit child fields, got %v", entries[1].Fields)
	}
}

func TestJSONLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.SetLevel(ErrorLevel)
	if logger.GetLevel() != ErrorLevel {
		t.Errorf("GetLevel() = %v, want ERROR", logger.GetLevel())
	}

	logger.Warn("filtered")
	logger.Error("kept", Error(errors.New("boom")))

	entries := decodeEntries(t, &buf)
	if len(entries) != 1 || entries[0].Fields["error"] != "boom" {
		t.Errorf("Expected single error entry, got %+v", entries)
	}
}

func TestTimedOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	op := StartTimer(logger, "graph loaded", Path("edges.txt"))
	op.End(Count(12))

	failed := StartTimer(logger, "labels loaded")
	failed.EndError(errors.New("malformed line"))

	entries := decodeEntries(t, &buf)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Fields["path"] != "edges.txt" || entries[0].Fields["count"] != float64(12) {
		t.Errorf("Unexpected fields: %v", entries[0].Fields)
	}
	if _, ok := entries[0].Fields["latency"]; !ok {
		t.Error("Expected latency field")
	}
	if entries[1].Level != "ERROR" || entries[1].Fields["error"] != "malformed line" {
		t.Errorf("Unexpected error entry: %+v", entries[1])
	}
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("ignored", Seed(1))
	if logger.With(Trial(1)) == nil {
		t.Error("With() should return a logger")
	}
	if logger.GetLevel() != InfoLevel {
		t.Errorf("NopLogger level = %v, want INFO", logger.GetLevel())
	}
}

func BenchmarkJSONLogger_Info(b *testing.B) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("trial finished", Trial(i), Seed(int64(i)))
	}
}
