// Config command: print the effective configuration.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config prints the merged configuration after applying flag and environment
overrides. The access token is never printed; only whether writes are
enabled.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		fmt.Printf("write_enabled: %t\n", cfg.WriteEnabled())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
