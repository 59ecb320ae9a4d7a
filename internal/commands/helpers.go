package commands

import (
	"fmt"
	"os"

	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/config"
	"github.com/Acckion/XiaomiNote-for-Mac-sub011/internal/logger"
)

// setup loads the configuration and builds the logger the parser reports
// through. Structured logs go to the configured file; without one they are
// discarded so they never interleave with styled CLI output.
func setup() (*config.Config, *logger.Logger, func()) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogFile != "" {
		lg, cleanup, err := logger.NewFileLogger(cfg.LogFile)
		if err == nil {
			lg.ConfigLoaded(cfg.Mode, cfg.LogFile)
			return cfg, lg, cleanup
		}
		fmt.Fprintf(os.Stderr, "cannot open log file %s: %v\n", cfg.LogFile, err)
	}
	return cfg, logger.Discard(), func() {}
}

// readNote reads one note file, enforcing the configured size limit before
// any parsing happens.
func readNote(path string, limit int) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if limit > 0 && len(data) > limit {
		return "", fmt.Errorf("%s: note exceeds size limit of %d bytes", path, limit)
	}
	return string(data), nil
}
