package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"cognet/internal/adapters/editor"
	"cognet/internal/adapters/filesystem"
	"cognet/internal/adapters/tui"
	"cognet/internal/application/commands"
	"cognet/internal/config"
)

func main() {
	cfg, _, err := config.LoadDefault()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize adapters
	repo := filesystem.NewRepository(cfg.VaultPath(), cfg.Roots())
	editorOpener := editor.NewOpener()

	params := commands.ClusterParams{
		MinThemeSize:        cfg.Clustering.MinThemeSize,
		SimilarityThreshold: cfg.Clustering.SimilarityThreshold,
		MaxFeatures:         cfg.Clustering.MaxFeatures,
		StopWords:           cfg.Clustering.StopWords,
	}

	// Create and run TUI app
	app := tui.NewApp(repo, editorOpener, params)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
