package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/GMartinho/star-wars-api/pkg/logger"
)

func TestNew(t *testing.T) {
	l := logger.New()
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   logger.LoggerConfig
		expected zerolog.Level
	}{
		{
			name:     "Default log level when no level specified",
			config:   logger.LoggerConfig{LogLevel: zerolog.NoLevel},
			expected: zerolog.InfoLevel,
		},
		{
			name:     "Debug log level",
			config:   logger.LoggerConfig{LogLevel: zerolog.DebugLevel},
			expected: zerolog.DebugLevel,
		},
		{
			name:     "Error log level",
			config:   logger.LoggerConfig{LogLevel: zerolog.ErrorLevel},
			expected: zerolog.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logger.NewFromConfig(tt.config)
			if l == nil {
				t.Fatal("Expected logger to be created, got nil")
			}
		})
	}
}

func TestLoggerWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Infof("planet %s created", "Tatooine")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON log output, got %q: %v", buf.String(), err)
	}
	if entry["level"] != "info" {
		t.Errorf("Expected level info, got %v", entry["level"])
	}
	if entry["message"] != "planet Tatooine created" {
		t.Errorf("Expected formatted message, got %v", entry["message"])
	}
}

func TestLoggerErrorIncludesErrorField(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Error(errors.New("boom"), "insertion failed")

	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("Expected error field in output, got %q", buf.String())
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.WarnLevel)

	l.Info("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn level, got %q", buf.String())
	}

	l.Warn("should pass")
	if buf.Len() == 0 {
		t.Error("Expected warn to be logged at warn level")
	}
}

func TestDefaultLoggerIsSingleton(t *testing.T) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{})

	if logger.Default() == nil {
		t.Fatal("Expected a default logger")
	}
	if logger.Default() != logger.Default() {
		t.Error("Expected Default to return the same instance")
	}
}

func TestLoggerConfigConvertToDomain(t *testing.T) {
	cfg := logger.LoggerConfigJson{LogLevel: int8(zerolog.DebugLevel)}

	domain := cfg.ConvertToDomain()
	if domain.LogLevel != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", domain.LogLevel)
	}
}
