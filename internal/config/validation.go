package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value.
func (c *Config) Validate() error {
	var errs []string

	switch c.Provider.Backend {
	case "ollama", "gemini":
	default:
		errs = append(errs, fmt.Sprintf("provider.backend must be \"ollama\" or \"gemini\", got %q", c.Provider.Backend))
	}
	if c.Provider.Model == "" {
		errs = append(errs, "provider.model must not be empty")
	}
	if c.Provider.TimeoutSeconds < 1 {
		errs = append(errs, "provider.timeout_seconds must be >= 1")
	}

	if c.Agent.MaxRounds < 1 {
		errs = append(errs, "agent.max_rounds must be >= 1")
	}

	if c.Tools.MaxReadSize < 1 {
		errs = append(errs, "tools.max_read_size must be >= 1")
	}
	if c.Tools.MaxWriteSize < 1 {
		errs = append(errs, "tools.max_write_size must be >= 1")
	}
	for _, ext := range c.Tools.AllowedExtensions {
		if !strings.HasPrefix(ext, ".") {
			errs = append(errs, fmt.Sprintf("tools.allowed_extensions entries must start with a dot, got %q", ext))
		}
	}
	if c.Tools.BackupDir == "" {
		errs = append(errs, "tools.backup_dir must not be empty")
	}
	if strings.HasPrefix(c.Tools.BackupDir, "/") || strings.Contains(c.Tools.BackupDir, "..") {
		errs = append(errs, "tools.backup_dir must be a workspace-relative path")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
