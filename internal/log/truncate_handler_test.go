package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestTruncateHandler_TruncatesLongValues tests that oversized string values
// are shortened while short values pass through untouched.
func TestTruncateHandler_TruncatesLongValues(t *testing.T) {
	t.Parallel()

	longText := strings.Repeat("a", MaxAttrLen+50)

	tests := []struct {
		name         string
		key          string
		value        string
		wantTruncate bool
	}{
		{
			name:         "long text is truncated",
			key:          "text",
			value:        longText,
			wantTruncate: true,
		},
		{
			name:         "value at the limit is untouched",
			key:          "text",
			value:        strings.Repeat("b", MaxAttrLen),
			wantTruncate: false,
		},
		{
			name:         "short value is untouched",
			key:          "source",
			value:        "essay.txt",
			wantTruncate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, true)

			logger.Info("test message", tt.key, tt.value)

			output := buf.String()

			if tt.wantTruncate {
				if strings.Contains(output, tt.value) {
					t.Errorf("expected value to be truncated, but found in full: %s", output)
				}
				if !strings.Contains(output, Ellipsis) {
					t.Errorf("expected ellipsis in output, but not found: %s", output)
				}
				if !strings.Contains(output, tt.value[:MaxAttrLen]) {
					t.Errorf("expected truncated prefix in output, but not found: %s", output)
				}
			} else {
				if !strings.Contains(output, tt.value) {
					t.Errorf("expected value %q to be present in output, but not found: %s", tt.value, output)
				}
			}
		})
	}
}

// TestTruncateHandler_NonStringValues tests that non-string attributes pass
// through unchanged.
func TestTruncateHandler_NonStringValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.Info("test message", "words", 42, "average", 17.25)

	output := buf.String()

	if !strings.Contains(output, "words=42") {
		t.Errorf("expected int attribute in output: %s", output)
	}
	if !strings.Contains(output, "average=17.25") {
		t.Errorf("expected float attribute in output: %s", output)
	}
}

// TestTruncateHandler_LogLevels tests that log levels are respected.
func TestTruncateHandler_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		logLevel   slog.Level
		shouldShow bool
	}{
		{
			name:       "debug message shown in verbose mode",
			verbose:    true,
			logLevel:   slog.LevelDebug,
			shouldShow: true,
		},
		{
			name:       "debug message hidden in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelDebug,
			shouldShow: false,
		},
		{
			name:       "info message hidden in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelInfo,
			shouldShow: false,
		},
		{
			name:       "warn message shown in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelWarn,
			shouldShow: true,
		},
		{
			name:       "error message shown in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelError,
			shouldShow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			testMsg := "test_unique_message_12345"

			switch tt.logLevel {
			case slog.LevelDebug:
				logger.Debug(testMsg)
			case slog.LevelInfo:
				logger.Info(testMsg)
			case slog.LevelWarn:
				logger.Warn(testMsg)
			case slog.LevelError:
				logger.Error(testMsg)
			}

			output := buf.String()
			hasMessage := strings.Contains(output, testMsg)

			if tt.shouldShow && !hasMessage {
				t.Errorf("expected message to be shown, but not found in output: %s", output)
			}
			if !tt.shouldShow && hasMessage {
				t.Errorf("expected message to be hidden, but found in output: %s", output)
			}
		})
	}
}

// TestTruncateHandler_WithAttrs tests that WithAttrs truncates attributes.
func TestTruncateHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	longText := strings.Repeat("x", MaxAttrLen*2)
	childLogger := logger.With("text", longText)
	childLogger.Info("test message")

	output := buf.String()

	if strings.Contains(output, longText) {
		t.Errorf("expected text to be truncated in WithAttrs, but found in full: %s", output)
	}
	if !strings.Contains(output, Ellipsis) {
		t.Errorf("expected ellipsis in output, but not found: %s", output)
	}
}

// TestTruncateHandler_WithGroup tests that WithGroup works correctly.
func TestTruncateHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	longText := strings.Repeat("y", MaxAttrLen*2)
	groupLogger := logger.WithGroup("analysis")
	groupLogger.Info("test message", "source", "essay.txt", "text", longText)

	output := buf.String()

	// Source path should be visible
	if !strings.Contains(output, "essay.txt") {
		t.Errorf("expected source to be visible, but not found in output: %s", output)
	}

	// Text should be truncated
	if strings.Contains(output, longText) {
		t.Errorf("expected text to be truncated, but found in full: %s", output)
	}
}

// TestNewJSONLogger tests JSON logger creation.
func TestNewJSONLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, true)

	logger.Info("test message", "text", strings.Repeat("z", MaxAttrLen*2))

	output := buf.String()

	// Should be JSON format
	if !strings.Contains(output, "{") || !strings.Contains(output, "}") {
		t.Errorf("expected JSON format, but got: %s", output)
	}

	// Text should be truncated
	if !strings.Contains(output, Ellipsis) {
		t.Errorf("expected ellipsis in output, but not found: %s", output)
	}
}

// TestNewTruncateHandler_NilHandler tests that nil handler is handled gracefully.
func TestNewTruncateHandler_NilHandler(t *testing.T) {
	t.Parallel()

	// Should not panic with nil handler
	handler := NewTruncateHandler(nil)
	if handler == nil {
		t.Error("expected non-nil handler")
	}

	// Should be able to use the handler
	logger := slog.New(handler)
	logger.Info("test message") // Should not panic
}
