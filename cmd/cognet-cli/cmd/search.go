package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cognet/internal/application/commands"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the vault",
	Long: `Search for notes by title, path, or tag.

Results are ranked by relevance using fuzzy matching.

Examples:
  cognet-cli search zettelkasten
  cognet-cli search spaced-rep`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := args[0]
		ctx := context.Background()

		results, err := commands.NewSearchCommand(GetRepo(), query).Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			line := fmt.Sprintf("%s  %s", r.Note.Title, r.Note.Path)
			if len(r.Note.Tags) > 0 {
				line += "  #" + strings.Join(r.Note.Tags, " #")
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
