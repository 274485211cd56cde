// Package cli implements the command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/claws/gramps2gource/internal/config"
	"github.com/claws/gramps2gource/internal/logging"
)

var (
	// Global flags
	configPath string
	logLevel   string
	logPretty  bool

	// Resolved values
	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gramps2gource",
	Short: "Convert Gramps family-history archives into Gource custom logs",
	Long: `gramps2gource reads a Gramps genealogy archive (.gramps file) and writes
a Gource custom-format log that replays a focus person's pedigree.

Display the generated log with:

    cat pedigree_<name>.log | gource --log-format custom \
      --hide users,dirnames,date --stop-at-end --camera-mode overview \
      --seconds-per-day 1 --auto-skip-seconds 1 -i 0 -c 3.0 -`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch config or the store.
		switch cmd.Name() {
		case "version", "help", "completion":
			return nil
		}

		path := configPath
		if path == "" {
			var err error
			if path, err = config.DefaultPath(); err != nil {
				return fmt.Errorf("failed to locate config: %w", err)
			}
		}
		var err error
		if cfg, err = config.Load(path); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := logLevel
		if level == "" {
			level = cfg.LogLevel
		}
		pretty := logPretty || cfg.LogPretty || isatty.IsTerminal(os.Stderr.Fd())
		log = logging.New(logging.Options{Level: level, Pretty: pretty})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.config/gramps2gource/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "pretty", false, "force human-oriented console logging")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}
