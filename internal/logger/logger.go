// Package logger writes leveled lines to stderr. A Scoped logger tags each
// line with the component that wrote it.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a message severity. The zero Level is LevelInfo.
type Level int32

const (
	LevelDebug Level = iota - 1
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

var levelNames = map[string]Level{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var (
	level atomic.Int32
	out   = log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds)
)

// SetLevel sets the minimum level by name and reports whether the name was
// known.
func SetLevel(name string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if ok {
		level.Store(int32(l))
	}
	return ok
}

func GetLevel() Level { return Level(level.Load()) }

// Redirect sends all output to w. The returned func restores the previous
// writer.
func Redirect(w io.Writer) (restore func()) {
	prev := out.Writer()
	out.SetOutput(w)
	return func() { out.SetOutput(prev) }
}

// Logger writes lines tagged with a scope.
type Logger struct {
	scope string
}

// Scoped returns a logger whose lines read "[LEVEL] scope: message".
func Scoped(scope string) Logger { return Logger{scope: scope} }

func (lg Logger) logf(l Level, format string, args ...any) {
	if l < GetLevel() {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if lg.scope != "" {
		msg = lg.scope + ": " + msg
	}
	out.Printf("[%s] %s", l, msg)
}

func (lg Logger) Debugf(format string, a ...any) { lg.logf(LevelDebug, format, a...) }
func (lg Logger) Infof(format string, a ...any)  { lg.logf(LevelInfo, format, a...) }
func (lg Logger) Warnf(format string, a ...any)  { lg.logf(LevelWarn, format, a...) }
func (lg Logger) Errorf(format string, a ...any) { lg.logf(LevelError, format, a...) }

var std Logger

func Debugf(format string, a ...any) { std.logf(LevelDebug, format, a...) }
func Infof(format string, a ...any)  { std.logf(LevelInfo, format, a...) }
func Warnf(format string, a ...any)  { std.logf(LevelWarn, format, a...) }
func Errorf(format string, a ...any) { std.logf(LevelError, format, a...) }
