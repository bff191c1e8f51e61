// Package logtest provides a glog.Logger that records entries for tests.
package logtest

import (
	"context"
	"sync"

	glog "github.com/goliatone/go-logger/glog"
)

var _ glog.Logger = (*Logger)(nil)

// Entry is one recorded log call.
type Entry struct {
	Level  string
	Msg    string
	Fields map[string]any
}

// Logger records every call. Copies made by WithContext share the records.
type Logger struct {
	mu      *sync.Mutex
	entries *[]Entry
}

// New returns an empty capture logger.
func New() *Logger {
	return &Logger{mu: &sync.Mutex{}, entries: &[]Entry{}}
}

func (l *Logger) Trace(msg string, args ...any) { l.record("trace", msg, args...) }
func (l *Logger) Debug(msg string, args ...any) { l.record("debug", msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.record("info", msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.record("warn", msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.record("error", msg, args...) }
func (l *Logger) Fatal(msg string, args ...any) { l.record("fatal", msg, args...) }

func (l *Logger) WithContext(context.Context) glog.Logger {
	return &Logger{mu: l.mu, entries: l.entries}
}

func (l *Logger) record(level, msg string, args ...any) {
	fields := make(map[string]any)

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		fields[key] = args[i+1]
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	*l.entries = append(*l.entries, Entry{Level: level, Msg: msg, Fields: fields})
}

// Entries returns a copy of the recorded entries.
func (l *Logger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(*l.entries))
	copy(out, *l.entries)

	return out
}

// Level returns the entries recorded at level.
func (l *Logger) Level(level string) []Entry {
	var out []Entry

	for _, e := range l.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}

	return out
}
