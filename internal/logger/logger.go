// Package logger configures the op/go-logging backend. The terminal belongs
// to the watch face, so log output goes to a file or nowhere.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"
)

const format = `%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s} %{id:03x} %{message}`

// DefaultLogger returns the logger for module writing to out at level.
func DefaultLogger(out io.Writer, level logging.Level, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(out, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, logging.MustStringFormatter(format))
	backendLeveledFormatter := logging.AddModuleLevel(backendFormatter)
	backendLeveledFormatter.SetLevel(level, module)
	logging.SetBackend(backendLeveledFormatter)

	return log
}

// Open returns a debug logger appending to path, or a discarding logger
// when path is empty. The returned close func must be called on exit.
func Open(path, module string) (*logging.Logger, func() error, error) {
	if path == "" {
		return DefaultLogger(io.Discard, logging.ERROR, module), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening debug log: %w", err)
	}
	return DefaultLogger(f, logging.DEBUG, module), f.Close, nil
}
