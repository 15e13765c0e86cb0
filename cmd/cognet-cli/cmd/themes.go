package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cognet/internal/application"
	"cognet/internal/application/commands"
)

var (
	themesMinSize   int
	themesThreshold float64
	themesDryRun    bool
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Cluster notes into themes",
	Long: `Cluster the vault's notes into thematic groups by content similarity
and publish one summary document per theme plus a master index.

Examples:
  cognet-cli themes
  cognet-cli themes --min-size 4 --threshold 0.4
  cognet-cli themes --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := GetConfig()

		params := commands.ClusterParams{
			MinThemeSize:        cfg.Clustering.MinThemeSize,
			SimilarityThreshold: cfg.Clustering.SimilarityThreshold,
			MaxFeatures:         cfg.Clustering.MaxFeatures,
			StopWords:           cfg.Clustering.StopWords,
		}
		if cmd.Flags().Changed("min-size") {
			params.MinThemeSize = themesMinSize
		}
		if cmd.Flags().Changed("threshold") {
			params.SimilarityThreshold = themesThreshold
		}

		result, err := commands.NewThemesCommand(GetRepo(), params).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Analyzed %d notes, found %d themes (%d unclustered)\n",
			len(result.Corpus.Notes), len(result.Themes), len(result.Noise))
		for _, theme := range result.Themes {
			fmt.Printf("  %s (%d notes)\n", theme.Name, len(theme.Notes))
		}

		if themesDryRun {
			return nil
		}
		if err := GetRepo().WriteDocs(cfg.MetaPath(), result.Docs); err != nil {
			return &application.PublishError{Dir: cfg.MetaPath(), Reason: err.Error()}
		}
		fmt.Printf("Wrote %d documents to %s\n", len(result.Docs), cfg.MetaPath())
		return nil
	},
}

func init() {
	themesCmd.Flags().IntVar(&themesMinSize, "min-size", 0, "minimum notes per theme")
	themesCmd.Flags().Float64Var(&themesThreshold, "threshold", 0, "similarity threshold in (0, 1)")
	themesCmd.Flags().BoolVar(&themesDryRun, "dry-run", false, "analyze without writing documents")
	rootCmd.AddCommand(themesCmd)
}
