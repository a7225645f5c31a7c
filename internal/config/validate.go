package config

import (
	"fmt"
	"strings"
)

// Validate checks that the configuration holds usable values. It does not
// require an API key; commands that need one check for it themselves so that
// purely local commands keep working without credentials.
func (c *Config) Validate() error {
	switch c.Organize.Mode {
	case "copy", "move":
	default:
		return fmt.Errorf("organize.mode: must be \"copy\" or \"move\", got %q", c.Organize.Mode)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: must be \"console\" or \"json\", got %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}

	if !strings.HasPrefix(c.LLM.BaseURL, "http://") && !strings.HasPrefix(c.LLM.BaseURL, "https://") {
		return fmt.Errorf("llm.base_url: must be an http(s) URL, got %q", c.LLM.BaseURL)
	}

	if c.LLM.TimeoutSeconds <= 0 {
		return fmt.Errorf("llm.timeout_seconds: must be positive, got %d", c.LLM.TimeoutSeconds)
	}

	return nil
}
