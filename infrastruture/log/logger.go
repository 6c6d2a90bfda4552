package log

import (
	"errors"
	"io"
	"log"

	"github.com/keymaze/keymaze-api/config"
	"github.com/keymaze/keymaze-api/service/i"
)

// Logger is a leveled logger with a colored subsystem prefix.
// Implements i.Logger.
type Logger struct {
	name  string
	color string
	out   *log.Logger
}

var _ i.Logger = &Logger{}

// New creates a Logger writing to w with the given subsystem name and
// ANSI color prefix.
func New(name, color string, w io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}

	return &Logger{
		name:  name,
		color: color,
		out:   log.New(w, "", log.LstdFlags),
	}, nil
}

// Discard returns a logger that drops everything, for tests.
func Discard() *Logger {
	return &Logger{
		name: "discard",
		out:  log.New(io.Discard, "", 0),
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a warning message.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarnColor, "WARN", msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s",
		l.color, l.name, config.LogColorReset,
		levelColor, level, config.LogColorReset,
		msg)
}
