package cli

import (
	"fmt"

	"go.uber.org/zap"
)

// newLogger logs to path, or nowhere when path is empty so the terminal UI stays clean.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return logger.Named("viewer"), nil
}
