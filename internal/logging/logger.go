package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rpggio/yamtik/internal/config"
)

// New builds the process logger. Output goes to w unless cfg.Path names a
// log file, which is then size-capped. The returned closer is never nil.
// Every record carries a run_id identifying this invocation.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	if cfg.Path != "" {
		fileWriter, err := NewFileWriter(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		w, closer = fileWriter, fileWriter
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(cfg.Level),
	}))
	return logger.With("run_id", uuid.NewString()), closer, nil
}

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
