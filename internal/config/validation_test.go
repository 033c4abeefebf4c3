package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_Provider(t *testing.T) {
	t.Run("Unknown Backend Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider.Backend = "openai"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "backend")
	})

	t.Run("Empty Model Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider.Model = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "model")
	})

	t.Run("Zero Timeout Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Provider.TimeoutSeconds = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "timeout_seconds")
	})
}

func TestValidate_Agent(t *testing.T) {
	t.Run("Zero MaxRounds Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Agent.MaxRounds = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_rounds")
	})
}

func TestValidate_Tools(t *testing.T) {
	t.Run("Zero Read Size Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.MaxReadSize = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_read_size")
	})

	t.Run("Zero Write Size Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.MaxWriteSize = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_write_size")
	})

	t.Run("Extension Without Dot Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.AllowedExtensions = append(cfg.Tools.AllowedExtensions, "txt")
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "allowed_extensions")
	})

	t.Run("Absolute Backup Dir Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tools.BackupDir = "/var/backups"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "backup_dir")
	})

	t.Run("Multiple Errors Accumulate", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Agent.MaxRounds = 0
		cfg.Tools.MaxReadSize = 0
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "max_rounds")
		assert.Contains(t, err.Error(), "max_read_size")
	})
}
