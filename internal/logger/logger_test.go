package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func initTestLogger(t *testing.T, verbose bool) (*bytes.Buffer, string) {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "logs", "stowsort.log")
	consoleBuffer := &bytes.Buffer{}

	if err := Init(consoleBuffer, logPath, verbose); err != nil {
		t.Fatalf("Failed to initialize logger: %v", err)
	}
	t.Cleanup(Close)

	return consoleBuffer, logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLoggerInit(t *testing.T) {
	consoleBuffer, logPath := initTestLogger(t, false)

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}

	Info("Loaded %d sheets", 3)
	if !strings.Contains(consoleBuffer.String(), "Loaded 3 sheets") {
		t.Errorf("Console output missing info message: %s", consoleBuffer.String())
	}

	logStr := readLog(t, logPath)
	if !strings.Contains(logStr, "[INFO]") {
		t.Error("Log file missing INFO level")
	}
	if !strings.Contains(logStr, "Loaded 3 sheets") {
		t.Error("Log file missing info message")
	}
}

func TestLoggerLevels(t *testing.T) {
	consoleBuffer, logPath := initTestLogger(t, false)

	Debug("Debug message")
	Info("Info message")
	Warn("Warn message")
	Error("Error message")

	logStr := readLog(t, logPath)
	for _, tag := range []string{"[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"} {
		if !strings.Contains(logStr, tag) {
			t.Errorf("Log file missing %s level", tag)
		}
	}

	if strings.Contains(consoleBuffer.String(), "[DEBUG]") {
		t.Error("Console should not show DEBUG when verbose=false")
	}
}

func TestLoggerVerbose(t *testing.T) {
	consoleBuffer, _ := initTestLogger(t, true)

	Debug("Debug message")

	consoleStr := consoleBuffer.String()
	if !strings.Contains(consoleStr, "[DEBUG]") {
		t.Error("Console should show DEBUG when verbose=true")
	}
	if !strings.Contains(consoleStr, "Debug message") {
		t.Error("Console missing debug message content")
	}
}

func TestLogSkip(t *testing.T) {
	consoleBuffer, logPath := initTestLogger(t, false)

	SetRunID("run-42")
	LogSkip("Full List", 4, "duplicate container ABCD1234567 ignored")
	LogSkip("Full List", 5, "empty stowage for ABCD7654321")

	logStr := readLog(t, logPath)
	if !strings.Contains(logStr, "[run-42] [SKIP]") {
		t.Errorf("Log file missing run id tagged skip: %s", logStr)
	}
	if !strings.Contains(logStr, "Row: 5") {
		t.Error("Skip row should be reported 1-based")
	}
	if strings.Contains(consoleBuffer.String(), "[SKIP]") {
		t.Error("Console should not show skips when verbose=false")
	}
	if SkipCount() != 2 {
		t.Errorf("SkipCount() = %d, expected 2", SkipCount())
	}

	SetRunID("run-43")
	if SkipCount() != 0 {
		t.Error("SetRunID should reset the skip counter")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		result := tt.level.String()
		if result != tt.expected {
			t.Errorf("Level.String() = %s, expected %s", result, tt.expected)
		}
	}
}

func TestGetLogFilePath(t *testing.T) {
	_, logPath := initTestLogger(t, false)

	if got := GetLogFilePath(); got != logPath {
		t.Errorf("GetLogFilePath() = %s, expected %s", got, logPath)
	}
}

func TestUninitializedLoggerIsSafe(t *testing.T) {
	Close()

	Debug("dropped")
	LogSkip("Sheet1", 0, "ignored")
	SetRunID("x")

	if SkipCount() != 0 {
		t.Error("SkipCount() should be 0 without a logger")
	}
	if IsVerbose() {
		t.Error("IsVerbose() should be false without a logger")
	}
	if GetLogFilePath() != "" {
		t.Error("GetLogFilePath() should be empty without a logger")
	}
}
