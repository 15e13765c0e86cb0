package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"cognet/internal/adapters/filesystem"
	mcpadapter "cognet/internal/adapters/mcp"
	"cognet/internal/application/commands"
	"cognet/internal/config"
)

func main() {
	vaultFlag := flag.String("vault", "", "path to the vault (overrides config)")
	flag.Parse()

	cfg, _, err := config.LoadDefault()
	if err != nil {
		log.Fatalf("cognet-mcp: %v", err)
	}
	if *vaultFlag != "" {
		cfg.Vault = *vaultFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("cognet-mcp: %v", err)
	}

	repo := filesystem.NewRepository(cfg.VaultPath(), cfg.Roots())

	mcpServer := server.NewMCPServer(
		"cognet-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check that returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo,
		commands.ClusterParams{
			MinThemeSize:        cfg.Clustering.MinThemeSize,
			SimilarityThreshold: cfg.Clustering.SimilarityThreshold,
			MaxFeatures:         cfg.Clustering.MaxFeatures,
			StopWords:           cfg.Clustering.StopWords,
		},
		commands.LinkParams{
			MinSimilarity:  cfg.Linking.MinSimilarity,
			MaxSuggestions: cfg.Linking.MaxSuggestions,
		},
	)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("cognet-mcp: %v", err)
	}
}
