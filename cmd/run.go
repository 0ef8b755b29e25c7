package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arnavsud/stethoquest/internal/app"
	"github.com/arnavsud/stethoquest/internal/game"
	"github.com/arnavsud/stethoquest/internal/llm"
	"github.com/arnavsud/stethoquest/internal/packgen"
	"github.com/arnavsud/stethoquest/internal/store"
	"github.com/arnavsud/stethoquest/internal/tutor"
)

// runApp opens the store, builds the service graph, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events := st.EventRepo()
	opts := game.Options{
		SnapshotRepo: st.SnapshotRepo(),
		EventRepo:    events,
	}

	provider, err := providerFromEnv(cmd, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Pack generation and the tutor will be unavailable.")
	} else {
		opts.Generator = packgen.New(provider, packgen.DefaultConfig())
		opts.Tutor = tutor.NewService(provider, tutor.DefaultConfig())
	}

	svc := game.NewService(opts)
	if err := svc.Load(ctx); err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	return app.Run(svc)
}

// providerFromEnv builds an LLM provider from the STETHOQUEST_* variables,
// falling back to probing the standard API key variables (GEMINI_API_KEY,
// OPENAI_API_KEY, ...) when those are not set.
func providerFromEnv(cmd *cobra.Command, events store.EventRepo) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return nil, fmt.Errorf("no API key found in environment")
		}
		cfg = discovered
	}
	return llm.NewProvider(cmd.Context(), cfg, events)
}
