package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cognet/internal/application"
	"cognet/internal/application/commands"
)

var linksDryRun bool

var linksCmd = &cobra.Command{
	Use:   "links",
	Short: "Audit wiki links",
	Long: `Find broken wiki links and suggest new connections between
content-similar notes, then write the audit report.

Examples:
  cognet-cli links
  cognet-cli links --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := GetConfig()

		params := commands.LinkParams{
			MinSimilarity:  cfg.Linking.MinSimilarity,
			MaxSuggestions: cfg.Linking.MaxSuggestions,
		}
		result, err := commands.NewLinksCommand(GetRepo(), params).Execute(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Checked %d notes: %d broken links, suggestions for %d notes\n",
			len(result.Corpus.Notes), len(result.Broken), len(result.Suggestions))

		if linksDryRun {
			return nil
		}
		docs := map[string]string{"link-audit-report.md": result.Report}
		if err := GetRepo().WriteDocs(cfg.MetaPath(), docs); err != nil {
			return &application.PublishError{Dir: cfg.MetaPath(), Reason: err.Error()}
		}
		fmt.Printf("Wrote link-audit-report.md to %s\n", cfg.MetaPath())
		return nil
	},
}

func init() {
	linksCmd.Flags().BoolVar(&linksDryRun, "dry-run", false, "analyze without writing the report")
	rootCmd.AddCommand(linksCmd)
}
