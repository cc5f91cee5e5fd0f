package logger

import (
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the path to the console log file, relative to the working directory (project root when run via go run ./cmd/atlas).
const LogFilePath = "logs/console.txt"

// Severity levels for console lines. Say output from scripts uses LevelSay so
// the console can color it differently from system traffic.
const (
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelError   = "error"
	LevelSuccess = "success"
	LevelSay     = "say"
)

// Line is one console entry: a severity level plus the message text.
type Line struct {
	Level string
	Text  string
}

// Logger stores leveled console lines in memory and appends them to a file on disk.
type Logger struct {
	mu    sync.Mutex
	lines []Line
}

// New returns a new Logger and ensures the logs directory exists.
func New() *Logger {
	dir := filepath.Dir(LogFilePath)
	_ = os.MkdirAll(dir, 0755)
	return &Logger{lines: make([]Line, 0)}
}

// Log appends a leveled line and writes it to the log file on disk. Each file
// entry is prefixed with [timestamp] [level] using computer time.
func (l *Logger) Log(level, text string) {
	l.mu.Lock()
	l.lines = append(l.lines, Line{Level: level, Text: text})
	l.mu.Unlock()

	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] [" + level + "] " + text

	f, err := os.OpenFile(LogFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Info logs at the info level.
func (l *Logger) Info(text string) { l.Log(LevelInfo, text) }

// Say logs script say-channel output.
func (l *Logger) Say(text string) { l.Log(LevelSay, text) }

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}
