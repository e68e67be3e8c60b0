package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

// Logger is a named console logger. One instance per component.
type Logger struct {
	name string
}

var (
	infoColor    = color.New(color.FgCyan)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

func New(name string) *Logger {
	return &Logger{name: name}
}

func (l *Logger) prefix() string {
	return fmt.Sprintf("%s [%s]", time.Now().Format("2006/01/02 15:04:05"), l.name)
}

func (l *Logger) Info(format string, args ...interface{}) {
	infoColor.Fprintf(os.Stdout, "%s INFO %s\n", l.prefix(), fmt.Sprintf(format, args...))
}

func (l *Logger) Success(format string, args ...interface{}) {
	successColor.Fprintf(os.Stdout, "%s OK %s\n", l.prefix(), fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...interface{}) {
	warnColor.Fprintf(os.Stdout, "%s WARN %s\n", l.prefix(), fmt.Sprintf(format, args...))
}

// Error logs msg with err and returns the wrapped error so callers can
// log and propagate in one statement.
func (l *Logger) Error(msg string, err error) error {
	if err == nil {
		errorColor.Fprintf(os.Stderr, "%s ERROR %s\n", l.prefix(), msg)
		return fmt.Errorf("%s", msg)
	}
	errorColor.Fprintf(os.Stderr, "%s ERROR %s: %v\n", l.prefix(), msg, err)
	return fmt.Errorf("%s: %w", msg, err)
}
