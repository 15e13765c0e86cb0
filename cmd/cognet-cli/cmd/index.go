package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cognet/internal/application"
	"cognet/internal/application/commands"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Generate the note index",
	Long: `Generate the master note index: recently updated notes plus all
notes grouped by tag.

Example:
  cognet-cli index`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		cfg := GetConfig()

		params := commands.IndexParams{RecentDays: cfg.RecentDays}
		result, err := commands.NewIndexCommand(GetRepo(), params).Execute(ctx)
		if err != nil {
			return err
		}

		docs := map[string]string{"index.md": result.Doc}
		if err := GetRepo().WriteDocs(cfg.MetaPath(), docs); err != nil {
			return &application.PublishError{Dir: cfg.MetaPath(), Reason: err.Error()}
		}
		fmt.Printf("Indexed %d notes, wrote index.md to %s\n",
			len(result.Corpus.Notes), cfg.MetaPath())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
