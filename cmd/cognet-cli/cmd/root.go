package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"cognet/internal/adapters/filesystem"
	"cognet/internal/config"
	"cognet/internal/ports"
)

var (
	vaultPath string
	debug     bool

	cfg  *config.Config
	repo ports.CorpusRepository
)

var rootCmd = &cobra.Command{
	Use:   "cognet-cli",
	Short: "CLI for maintaining a personal knowledge base",
	Long: `cognet-cli is a command-line interface for maintaining a vault of
markdown notes.

It discovers thematic clusters across your notes, audits wiki links,
finds orphaned notes, and generates index and statistics documents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}

		loaded, path, err := config.LoadDefault()
		if err != nil {
			return err
		}
		cfg = loaded
		if vaultPath != "" {
			cfg.Vault = vaultPath
		}
		if err := cfg.Validate(); err != nil {
			if path != "" {
				return fmt.Errorf("%s: %w", path, err)
			}
			return err
		}

		repo = filesystem.NewRepository(cfg.VaultPath(), cfg.Roots())
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", "", "path to the vault (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// GetRepo returns the initialized repository
func GetRepo() ports.CorpusRepository {
	return repo
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
