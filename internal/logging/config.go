package logging

import (
	"log/slog"
	"path/filepath"
	"strings"

	"docsort/internal/config"
)

// NewFromConfig creates a logger using application config defaults. Output
// goes to stderr plus a log file under the configured log directory.
func NewFromConfig(cfg *config.Config) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{Level: "info", Format: "console"})
	}
	paths := []string{"stderr"}
	if strings.TrimSpace(cfg.Paths.LogDir) != "" {
		paths = append(paths, filepath.Join(cfg.Paths.LogDir, "docsort.log"))
	}
	return New(Options{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		OutputPaths: paths,
	})
}
