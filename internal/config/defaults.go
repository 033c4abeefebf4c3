package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero
// values. Missing keys are left at their default values.
type Config struct {
	Provider ProviderConfig `json:"provider"`
	Agent    AgentConfig    `json:"agent"`
	Tools    ToolsConfig    `json:"tools"`
}

// ProviderConfig selects and configures the model endpoint backend.
type ProviderConfig struct {
	Backend        string `json:"backend"`         // "ollama" or "gemini"
	Host           string `json:"host"`            // Ollama endpoint URL
	Model          string `json:"model"`           // model name for the selected backend
	TimeoutSeconds int    `json:"timeout_seconds"` // transport-level request timeout
}

// AgentConfig bounds the dispatch loop.
type AgentConfig struct {
	MaxRounds int `json:"max_rounds"` // maximum model round-trips per prompt
}

// ToolsConfig holds the filesystem tool safety policy.
type ToolsConfig struct {
	MaxReadSize        int64    `json:"max_read_size"`        // read ceiling in bytes
	MaxWriteSize       int64    `json:"max_write_size"`       // write ceiling in bytes
	AllowedExtensions  []string `json:"allowed_extensions"`   // writable extensions, lowercase with dot
	AllowedHiddenFiles []string `json:"allowed_hidden_files"` // dotfile basenames exempt from the hidden rule
	ForbiddenPrefixes  []string `json:"forbidden_prefixes"`   // absolute prefixes no tool may touch
	BackupDir          string   `json:"backup_dir"`           // workspace-relative backup directory
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Backend:        "ollama",
			Host:           "http://localhost:11434",
			Model:          "llama3.1:8b",
			TimeoutSeconds: 120,
		},
		Agent: AgentConfig{
			MaxRounds: 20,
		},
		Tools: ToolsConfig{
			MaxReadSize:  100 * 1024,
			MaxWriteSize: 1024 * 1024,
			AllowedExtensions: []string{
				".txt", ".md", ".rst",
				".py", ".go", ".js", ".ts", ".sh",
				".json", ".yaml", ".yml", ".toml", ".ini", ".cfg",
				".csv", ".xml", ".html", ".css", ".log",
			},
			AllowedHiddenFiles: []string{
				".gitignore", ".gitattributes", ".env.example", ".editorconfig",
			},
			ForbiddenPrefixes: []string{
				"/etc", "/bin", "/sbin", "/usr", "/boot", "/dev",
				"/lib", "/lib64", "/opt", "/proc", "/root", "/sys", "/var",
			},
			BackupDir: ".fsagent_backups",
		},
	}
}
