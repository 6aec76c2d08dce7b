// Export command: write the dataset to local CSV files.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/logbook/internal/sync"
	"github.com/mesh-intelligence/logbook/internal/tabular"
)

// utf8BOM prefixes exported files so spreadsheet tools detect the encoding.
const utf8BOM = "\uFEFF"

var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Export all collections as local CSV files",
	Long: `Export loads the dataset and writes one CSV file per collection into the
given directory (default: ./export). Files carry a UTF-8 byte order mark so
spreadsheet tools open them correctly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "export"
		if len(args) == 1 {
			dir = args[0]
		}

		res, err := syn.LoadAll(cmd.Context())
		if err != nil {
			return err
		}
		if res.State == sync.StateUninitialized {
			return fmt.Errorf("remote data not initialized; run \"logbook init\" first")
		}
		if res.State == sync.StateOffline {
			fmt.Println("Remote store unreachable; exporting generated demo data.")
		}

		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}

		for _, c := range tabular.All {
			content, err := tabular.EncodeCollection(c, res.Data)
			if err != nil {
				return err
			}
			path := filepath.Join(dir, c.Name+".csv")
			if err := os.WriteFile(path, []byte(utf8BOM+content), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Println("wrote", path)
		}
		return nil
	},
}
