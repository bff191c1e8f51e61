// Package logging adapts logrus to the glog.Logger contract used by the
// library packages.
package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/sirupsen/logrus"
)

var _ glog.Logger = (*Logger)(nil)

// Logger is a wrapper around logrus.Logger implementing glog.Logger.
type Logger struct {
	*logrus.Logger
	fields logrus.Fields
}

// New creates a logger writing text lines to stderr. Stdout is kept for
// command output.
func New() *Logger {
	return NewWithOutput(os.Stderr)
}

// NewWithOutput creates a logger writing to w.
func NewWithOutput(w io.Writer) *Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	log.SetLevel(logrus.InfoLevel)

	return &Logger{Logger: log}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level string) {
	switch strings.ToLower(level) {
	case "trace":
		l.Logger.SetLevel(logrus.TraceLevel)
	case "debug":
		l.Logger.SetLevel(logrus.DebugLevel)
	case "info":
		l.Logger.SetLevel(logrus.InfoLevel)
	case "warn":
		l.Logger.SetLevel(logrus.WarnLevel)
	case "error":
		l.Logger.SetLevel(logrus.ErrorLevel)
	default:
		l.Logger.SetLevel(logrus.InfoLevel)
	}
}

func (l *Logger) Trace(msg string, args ...any) { l.entry(args).Trace(msg) }
func (l *Logger) Debug(msg string, args ...any) { l.entry(args).Debug(msg) }
func (l *Logger) Info(msg string, args ...any)  { l.entry(args).Info(msg) }
func (l *Logger) Warn(msg string, args ...any)  { l.entry(args).Warn(msg) }
func (l *Logger) Error(msg string, args ...any) { l.entry(args).Error(msg) }
func (l *Logger) Fatal(msg string, args ...any) { l.entry(args).Fatal(msg) }

// WithContext returns l; no values are read from ctx.
func (l *Logger) WithContext(context.Context) glog.Logger {
	return l
}

// With returns a logger that adds the key/value pairs to every entry.
func (l *Logger) With(args ...any) *Logger {
	fields := make(logrus.Fields, len(l.fields)+len(args)/2)
	for k, v := range l.fields {
		fields[k] = v
	}

	for k, v := range Fields(args) {
		fields[k] = v
	}

	return &Logger{Logger: l.Logger, fields: fields}
}

func (l *Logger) entry(args []any) *logrus.Entry {
	e := logrus.NewEntry(l.Logger)
	if len(l.fields) > 0 {
		e = e.WithFields(l.fields)
	}

	if len(args) > 0 {
		e = e.WithFields(Fields(args))
	}

	return e
}

// Fields converts alternating key/value arguments to logrus fields. A
// trailing key without value is kept under "extra"; non-string keys are
// formatted with %v.
func Fields(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2+1)

	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", args[i])
		}

		if i+1 >= len(args) {
			fields["extra"] = args[i]

			break
		}

		fields[key] = args[i+1]
	}

	return fields
}
