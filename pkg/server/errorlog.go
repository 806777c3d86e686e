package server

import (
	stdlog "log"
	"strings"

	"github.com/rs/zerolog"
)

// newErrorLog routes net/http's internal messages (TLS handshake noise,
// accept retries) through zerolog at warn level.
func newErrorLog(logger zerolog.Logger) *stdlog.Logger {
	return stdlog.New(errorLogWriter{logger}, "", 0)
}

type errorLogWriter struct {
	logger zerolog.Logger
}

func (w errorLogWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}
