// Package main provides the fsagent command-line interface. It forwards a
// single prompt to a locally hosted model, dispatches the model's filesystem
// tool calls, and prints the final answer.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/genai"

	"fsagent/internal/config"
	"fsagent/internal/orchestrator"
	orchadapter "fsagent/internal/orchestrator/adapter"
	"fsagent/internal/provider/gemini"
	provider "fsagent/internal/provider/models"
	"fsagent/internal/provider/ollama"
	toolmodels "fsagent/internal/tools/models"
	"fsagent/internal/tools/pathutil"
	"fsagent/internal/tools/services"
	"fsagent/internal/ui"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	Config          *config.Config
	Console         *ui.Console
	ProviderFactory func(context.Context) (provider.Provider, error)
}

func createProviderFactory(cfg *config.Config) func(context.Context) (provider.Provider, error) {
	return func(ctx context.Context) (provider.Provider, error) {
		switch cfg.Provider.Backend {
		case "gemini":
			apiKey := os.Getenv("GEMINI_API_KEY")
			if apiKey == "" {
				return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required for the gemini backend")
			}
			genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
			if err != nil {
				return nil, fmt.Errorf("failed to create Gemini client: %w", err)
			}
			return gemini.New(gemini.NewSDKClient(genaiClient), cfg.Provider.Model), nil
		default:
			host := cfg.Provider.Host
			if env := os.Getenv("OLLAMA_HOST"); env != "" {
				host = env
			}
			timeout := time.Duration(cfg.Provider.TimeoutSeconds) * time.Second
			return ollama.New(ollama.NewHTTPClient(host, timeout), cfg.Provider.Model), nil
		}
	}
}

func createRegistry(cfg *config.Config, workspaceRoot string) (*orchadapter.Registry, error) {
	canonicalRoot, err := pathutil.CanonicaliseRoot(workspaceRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize workspace root: %w", err)
	}

	osFS := services.NewOSFileSystem()

	var ignore toolmodels.IgnoreService
	svc, err := services.NewIgnoreService(canonicalRoot, osFS)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize gitignore service: %v\n", err)
		ignore = services.NoOpIgnoreService{}
	} else {
		ignore = svc
	}

	workspace := &toolmodels.WorkspaceContext{
		FS:                 osFS,
		WorkspaceRoot:      canonicalRoot,
		MaxReadSize:        cfg.Tools.MaxReadSize,
		MaxWriteSize:       cfg.Tools.MaxWriteSize,
		AllowedExtensions:  cfg.Tools.AllowedExtensions,
		AllowedHiddenFiles: cfg.Tools.AllowedHiddenFiles,
		ForbiddenPrefixes:  cfg.Tools.ForbiddenPrefixes,
		BackupDir:          cfg.Tools.BackupDir,
		Ignore:             ignore,
	}

	return orchadapter.NewRegistry(
		orchadapter.NewListDirectory(workspace),
		orchadapter.NewReadFile(workspace),
		orchadapter.NewWriteFile(workspace),
	)
}

func main() {
	prompt := strings.TrimSpace(strings.Join(os.Args[1:], " "))
	if prompt == "" {
		fmt.Fprintln(os.Stderr, "Usage: fsagent <prompt>")
		fmt.Fprintln(os.Stderr, `Example: fsagent "list the files in this directory"`)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		fmt.Fprintln(os.Stderr, "Using default configuration.")
		cfg = config.DefaultConfig()
	}
	if env := os.Getenv("FSAGENT_MODEL"); env != "" {
		cfg.Provider.Model = env
	}

	deps := Dependencies{
		Config:          cfg,
		Console:         ui.NewConsole(os.Stderr),
		ProviderFactory: createProviderFactory(cfg),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, deps, prompt); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, deps Dependencies, prompt string) error {
	workspaceRoot, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	registry, err := createRegistry(deps.Config, workspaceRoot)
	if err != nil {
		return fmt.Errorf("failed to initialize tools: %w", err)
	}

	p, err := deps.ProviderFactory(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize provider: %w", err)
	}

	orch := orchestrator.New(p, registry, deps.Console, deps.Config.Agent.MaxRounds)

	answer, err := orch.Run(ctx, prompt)
	if err != nil {
		var provErr *provider.ProviderError
		if errors.As(err, &provErr) && provErr.Code == provider.ErrorCodeConnection {
			return fmt.Errorf("cannot reach the model at %s: %w", deps.Config.Provider.Host, err)
		}
		return err
	}

	fmt.Println(ui.RenderAnswer(answer))
	return nil
}
