package log

import (
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"picren/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug atomic.Bool
	logger  = NewLogger()
)

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger with the package's debug gate.
type Logger struct {
	base *logrus.Logger
	file *os.File
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.base.SetOutput(w)
	}
}

// WithJSON switches to JSON lines.
func WithJSON() Option {
	return func(l *Logger) {
		l.base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithFile appends log lines to path, creating parent directories as needed.
// Output goes to the file only, so terminal UIs are not disturbed.
func WithFile(path string) Option {
	return func(l *Logger) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			l.base.WithError(err).Warn("could not create log directory")
			return
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			l.base.WithError(err).Warn("could not open log file")
			return
		}
		l.file = f
		l.base.SetOutput(f)
	}
}

func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	l := &Logger{base: base}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Close releases the log file, if any.
func Close() error {
	if logger.file != nil {
		return logger.file.Close()
	}
	return nil
}

func SetDebug(debug bool) {
	isDebug.Store(debug)
}

// DebugEnabled reports whether debug lines are written.
func DebugEnabled() bool {
	return isDebug.Load()
}

// With returns an entry carrying fields.
func (l *Logger) With(fields ...Field) *Entry {
	return (&Entry{e: logrus.NewEntry(l.base)}).With(fields...)
}

func (l *Logger) Info(msg string)                          { l.With().Info(msg) }
func (l *Logger) Infof(format string, args ...interface{}) { l.With().Infof(format, args...) }
func (l *Logger) Warn(msg string)                          { l.With().Warn(msg) }
func (l *Logger) Warnf(format string, args ...interface{}) { l.With().Warnf(format, args...) }
func (l *Logger) Error(msg string)                         { l.With().Error(msg) }
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.With().Errorf(format, args...)
}
func (l *Logger) Debug(msg string) { l.With().Debug(msg) }
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.With().Debugf(format, args...)
}

// Entry is a log line under construction.
type Entry struct {
	e *logrus.Entry
}

// With adds fields to the entry.
func (en *Entry) With(fields ...Field) *Entry {
	if len(fields) == 0 {
		return en
	}
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Entry{e: en.e.WithFields(lf)}
}

func (en *Entry) Info(msg string)                          { en.e.Info(msg) }
func (en *Entry) Infof(format string, args ...interface{}) { en.e.Infof(format, args...) }
func (en *Entry) Warn(msg string)                          { en.e.Warn(msg) }
func (en *Entry) Warnf(format string, args ...interface{}) { en.e.Warnf(format, args...) }
func (en *Entry) Error(msg string)                         { en.e.Error(msg) }
func (en *Entry) Errorf(format string, args ...interface{}) {
	en.e.Errorf(format, args...)
}

func (en *Entry) Debug(msg string) {
	if isDebug.Load() {
		en.e.Debug(msg)
	}
}

func (en *Entry) Debugf(format string, args ...interface{}) {
	if isDebug.Load() {
		en.e.Debugf(format, args...)
	}
}

// LogWithFields starts an entry on the package logger.
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

// LogWithError starts an entry describing err, including its kind and
// path or parameter when err is an application error.
func LogWithError(err error) *Entry {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}

	fields := []Field{F("error", err.Error())}
	if kind := errors.KindOf(err); kind != errors.Unknown {
		fields = append(fields, F("error_kind", int(kind)))
	}
	var fileErr *errors.FileError
	var configErr *errors.ConfigError
	switch {
	case errors.As(err, &configErr):
		fields = append(fields, F("param", configErr.Param()))
	case errors.As(err, &fileErr):
		fields = append(fields, F("path", fileErr.Path()))
	}
	return logger.With(fields...)
}

// LogError logs err with msg at error level.
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}

func Info(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
