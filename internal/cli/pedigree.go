package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	goslug "github.com/gosimple/slug"
	"github.com/spf13/cobra"

	"github.com/claws/gramps2gource/internal/gource"
	"github.com/claws/gramps2gource/internal/gramps"
)

var (
	pedigreeDB     string
	pedigreeNames  []string
	pedigreeOutput string
)

var pedigreeCmd = &cobra.Command{
	Use:   "pedigree",
	Short: "Write a Gource log replaying the ancestry of one or more focus persons",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pedigreeDB == "" {
			return fmt.Errorf("no gramps file provided (use --db)")
		}
		if len(pedigreeNames) == 0 {
			return fmt.Errorf("no focus name provided (use --name)")
		}

		output := pedigreeOutput
		if output == "" {
			output = defaultOutputName(pedigreeNames)
		}
		if cfg.OutputDir != "" && !filepath.IsAbs(output) {
			output = filepath.Join(cfg.OutputDir, output)
		}

		store, err := gramps.Parse(pedigreeDB, log)
		if err != nil {
			return err
		}
		return gource.New(store, log).Pedigree(pedigreeNames, output)
	},
}

func init() {
	pedigreeCmd.Flags().StringVarP(&pedigreeDB, "db", "d", "", "gramps database file to read")
	pedigreeCmd.Flags().StringArrayVarP(&pedigreeNames, "name", "n", nil, "focus person to extract pedigree data for (repeatable)")
	pedigreeCmd.Flags().StringVarP(&pedigreeOutput, "output", "o", "", "output file (default pedigree_<name>.log)")
	rootCmd.AddCommand(pedigreeCmd)
}

// defaultOutputName derives the output filename from the focus names:
// pedigree_<slugged name>.log for a single name, pedigree.log otherwise.
func defaultOutputName(names []string) string {
	if len(names) > 1 {
		return "pedigree.log"
	}
	return "pedigree_" + strings.ReplaceAll(goslug.Make(names[0]), "-", "_") + ".log"
}
