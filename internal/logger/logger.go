package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Level represents the logging level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger writes INFO and above to the console and everything to the log file
type Logger struct {
	mu            sync.Mutex
	consoleLogger *log.Logger
	fileLogger    *log.Logger
	logFile       *os.File
	verbose       bool
	minLevel      Level
	runID         string
	skips         int
}

var globalLogger *Logger

// Init initializes the global logger
// consoleOutput: where to write INFO logs (typically os.Stdout)
// logFilePath: path to the log file, appended to across runs
// verbose: if true, show DEBUG logs on console as well
func Init(consoleOutput io.Writer, logFilePath string, verbose bool) error {
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	minLevel := LevelInfo
	if verbose {
		minLevel = LevelDebug
	}

	globalLogger = &Logger{
		consoleLogger: log.New(consoleOutput, "", 0),
		fileLogger:    log.New(logFile, "", log.LstdFlags),
		logFile:       logFile,
		verbose:       verbose,
		minLevel:      minLevel,
	}

	return nil
}

// Close closes the log file
func Close() {
	if globalLogger != nil && globalLogger.logFile != nil {
		globalLogger.logFile.Close()
		globalLogger = nil
	}
}

// SetRunID tags every following file line with the given run id and resets the skip counter
func SetRunID(id string) {
	if globalLogger == nil {
		return
	}
	globalLogger.mu.Lock()
	globalLogger.runID = id
	globalLogger.skips = 0
	globalLogger.mu.Unlock()
}

// Debug logs a debug message (file only, unless verbose)
func Debug(format string, args ...interface{}) {
	if globalLogger == nil {
		return
	}
	globalLogger.log(LevelDebug, format, args...)
}

// Info logs an info message (console + file)
func Info(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.log(LevelInfo, format, args...)
}

// Warn logs a warning message (console + file)
func Warn(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("WARN: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelWarn, format, args...)
}

// Error logs an error message (console + file)
func Error(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf("ERROR: "+format+"\n", args...)
		return
	}
	globalLogger.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)

	l.mu.Lock()
	defer l.mu.Unlock()

	// File gets every level
	l.writeFile(level.String(), message)

	if level < l.minLevel {
		return
	}

	switch level {
	case LevelDebug:
		if l.verbose {
			l.consoleLogger.Printf("[DEBUG] %s", message)
		}
	case LevelInfo:
		l.consoleLogger.Printf("%s", message)
	case LevelWarn:
		l.consoleLogger.Printf("⚠️  %s", message)
	case LevelError:
		l.consoleLogger.Printf("❌ %s", message)
	}
}

func (l *Logger) writeFile(tag, message string) {
	if l.runID != "" {
		l.fileLogger.Printf("[%s] [%s] %s", l.runID, tag, message)
		return
	}
	l.fileLogger.Printf("[%s] %s", tag, message)
}

// InfoClean logs an info message without any prefix (console only)
// Useful for progress updates that shouldn't go to log file
func InfoClean(format string, args ...interface{}) {
	if globalLogger == nil {
		fmt.Printf(format+"\n", args...)
		return
	}
	globalLogger.consoleLogger.Printf(format, args...)
}

// LogSkip records a row or sheet that was skipped and processing continued.
// Details go to the file only; the console sees them with --verbose.
func LogSkip(sheet string, row int, reason string) {
	if globalLogger == nil {
		return
	}

	message := fmt.Sprintf("[SKIP] Sheet: %s, Row: %d, Reason: %s", sheet, row+1, reason)

	globalLogger.mu.Lock()
	globalLogger.skips++
	globalLogger.writeFile("SKIP", message)
	verbose := globalLogger.verbose
	globalLogger.mu.Unlock()

	if verbose {
		globalLogger.consoleLogger.Printf("[DEBUG] %s", message)
	}
}

// SkipCount returns how many skips were logged since the last SetRunID
func SkipCount() int {
	if globalLogger == nil {
		return 0
	}
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	return globalLogger.skips
}

// GetLogFilePath returns the path to the current log file
func GetLogFilePath() string {
	if globalLogger != nil && globalLogger.logFile != nil {
		return globalLogger.logFile.Name()
	}
	return ""
}

// IsVerbose returns whether verbose logging is enabled
func IsVerbose() bool {
	if globalLogger == nil {
		return false
	}
	return globalLogger.verbose
}
