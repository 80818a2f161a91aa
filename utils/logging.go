package utils

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const LogFileName = "goffin.log"

// SetupLogging points the standard logger at <dir>/goffin.log when debug is
// set, and discards log output otherwise. The screen belongs to the renderer,
// so nothing is ever logged to the terminal. The returned file is nil when
// logging is disabled.
func SetupLogging(debug bool, dir string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, errors.Wrapf(err, "[SetupLogging] failed to create log dir: %+v", dir)
	}

	path := filepath.Join(dir, LogFileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, errors.Wrapf(err, "[SetupLogging] failed to open log file: %+v", path)
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}
