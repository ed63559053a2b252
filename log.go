package fastpane

import (
	"io"

	"github.com/charmbracelet/log"
)

var logger = log.New(io.Discard)

// SetLogger replaces the package logger. The renderer owns the terminal, so
// callers normally point it at a file. A nil logger silences logging.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func Logger() *log.Logger {
	return logger
}
