package config

import (
	"fmt"
	"strings"

	"smartvault/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	c.Backend.Addr = strings.TrimSpace(c.Backend.Addr)
	if c.Backend.Addr == "" {
		return fmt.Errorf("backend.addr is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be > 0 (got %v)", c.Backend.Timeout)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if c.Journal.Retention < 0 {
		return fmt.Errorf("journal.retention must be >= 0 (got %d)", c.Journal.Retention)
	}

	t := c.Dedup.DefaultThreshold
	if t < domain.MinThreshold || t > domain.MaxThreshold {
		return fmt.Errorf("dedup.default_threshold must be within %d..%d (got %d)",
			domain.MinThreshold, domain.MaxThreshold, t)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be debug, info, warn or error (got %q)", l.Level)
	}
	switch l.Format {
	case "console", "json":
	default:
		return fmt.Errorf("format must be console or json (got %q)", l.Format)
	}
	return nil
}
