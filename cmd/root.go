package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/logs"
)

var rootCmd = &cobra.Command{
	Use:   "fitfork",
	Short: "FitFork's CLI for personalised nutrition planning.",
	Long: "FitFork's CLI for personalised nutrition planning. Sign in once and the " +
		"session, your profile, and your computed targets are cached locally until " +
		"you sign out or the session expires.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logs.ConfigureVerbosity(verboseLoggingEnabled)
		return buildApp()
	},
}

func bindSubcommands() {
	rootCmd.AddCommand(
		login,
		register,
		logout,
		whoami,
		profileCmd,
		searchCmd,
		recipeCmd,
		planCmd,
		chefCmd,
		calendarCmd,
		health,
	)
}

// Execute invokes the command and exits in the event of an error.
func Execute() {
	bindFlags()
	bindSubcommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
