package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/logs"
)

var health = &cobra.Command{
	Use:   "health",
	Short: "Check that the FitFork service is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.gateway.Health(cmd.Context()); err != nil {
			return err
		}
		logs.Print("The FitFork service is up.")
		return nil
	},
}
