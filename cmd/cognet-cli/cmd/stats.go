package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cognet/internal/application"
	"cognet/internal/application/commands"
)

var statsWrite bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show vault statistics",
	Long: `Compute vault-wide statistics: note, word, link and tag counts,
broken links, and the most used tags.

Examples:
  cognet-cli stats
  cognet-cli stats --write`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := GetConfig()

		result, err := commands.NewStatsCommand(GetRepo()).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Print(result.Doc)

		if !statsWrite {
			return nil
		}
		docs := map[string]string{"system-stats.md": result.Doc}
		if err := GetRepo().WriteDocs(cfg.MetaPath(), docs); err != nil {
			return &application.PublishError{Dir: cfg.MetaPath(), Reason: err.Error()}
		}
		fmt.Printf("\nWrote system-stats.md to %s\n", cfg.MetaPath())
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsWrite, "write", false, "also write the document to the meta directory")
	rootCmd.AddCommand(statsCmd)
}
