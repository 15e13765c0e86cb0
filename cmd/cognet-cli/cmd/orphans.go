package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cognet/internal/application"
	"cognet/internal/application/commands"
)

var orphansDryRun bool

var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "Find disconnected notes",
	Long: `Find notes with no links, no backlinks, no tags, or no metadata,
and write the orphan report.

Examples:
  cognet-cli orphans
  cognet-cli orphans --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := GetConfig()

		result, err := commands.NewOrphansCommand(GetRepo()).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Checked %d notes: %d isolated, %d without tags, %d without metadata\n",
			len(result.Corpus.Notes), len(result.Report.Isolated),
			len(result.Report.NoTags), len(result.Report.NoMeta))

		if orphansDryRun {
			return nil
		}
		docs := map[string]string{"orphan-notes-report.md": result.Doc}
		if err := GetRepo().WriteDocs(cfg.MetaPath(), docs); err != nil {
			return &application.PublishError{Dir: cfg.MetaPath(), Reason: err.Error()}
		}
		fmt.Printf("Wrote orphan-notes-report.md to %s\n", cfg.MetaPath())
		return nil
	},
}

func init() {
	orphansCmd.Flags().BoolVar(&orphansDryRun, "dry-run", false, "analyze without writing the report")
	rootCmd.AddCommand(orphansCmd)
}
