// Package logger holds the structured logger shared by the opendoc packages.
//
// Logging is off by default: the package logger discards everything until a
// caller installs its own with Set.
package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu  sync.RWMutex
	log logrus.FieldLogger = newDiscard()
)

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Get returns the current logger.
func Get() logrus.FieldLogger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// Set replaces the package logger. A nil logger restores the discarding default.
func Set(l logrus.FieldLogger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		log = newDiscard()
		return
	}
	log = l
}

// New builds a logrus logger writing to w at the named level ("debug", "info",
// ...) using either the "text" or "json" formatter.
func New(w io.Writer, level, format string) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	l.SetLevel(lvl)

	switch format {
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l, nil
}
