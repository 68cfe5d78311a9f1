package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// schemesCmd lists the queue ladders the simulator knows
var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the available scheduling schemes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		registry, err := cfg.Registry()
		if err != nil {
			return err
		}
		for _, scheme := range registry.Schemes() {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), scheme)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemesCmd)
}
