package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		configure LogLevel
		emit      LogLevel
		want      bool
	}{
		{"debug at info level", InfoLevel, DebugLevel, false},
		{"info at info level", InfoLevel, InfoLevel, true},
		{"warn at info level", InfoLevel, WarnLevel, true},
		{"error at warn level", WarnLevel, ErrorLevel, true},
		{"info at error level", ErrorLevel, InfoLevel, false},
		{"debug at debug level", DebugLevel, DebugLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(Config{Format: HumanFormat, Level: tt.configure, Output: &buf})

			logger.log(tt.emit, "message", nil)

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: JSONFormat, Level: InfoLevel, Output: &buf})

	logger.Info("recipe skipped", map[string]interface{}{"recipeId": 10})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["level"] != "info" {
		t.Errorf("expected level info, got %v", entry["level"])
	}
	if entry["message"] != "recipe skipped" {
		t.Errorf("expected message, got %v", entry["message"])
	}
	fields, ok := entry["fields"].(map[string]interface{})
	if !ok || fields["recipeId"] != float64(10) {
		t.Errorf("expected fields.recipeId=10, got %v", entry["fields"])
	}
}

func TestHumanFormatSortsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: HumanFormat, Level: InfoLevel, Output: &buf})

	logger.Info("done", map[string]interface{}{"zeta": 1, "alpha": 2, "mid": 3})

	line := buf.String()
	if !strings.Contains(line, "alpha=2, mid=3, zeta=1") {
		t.Errorf("expected sorted fields in %q", line)
	}
	if !strings.Contains(line, "[info] done") {
		t.Errorf("expected level and message in %q", line)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", DebugLevel},
		{"error", ErrorLevel},
		{"verbose", InfoLevel},
		{"", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
