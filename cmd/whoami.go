package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/logs"
)

var whoami = &cobra.Command{
	Use:   "whoami",
	Short: "Print out information about the currently-authenticated user",
	Long: "Print out information about the currently-authenticated user, from the " +
		"local cache. If there is no current session, you will be asked to sign in.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		user := current.session.User()
		logs.Print("ID:    %s", user.ID)
		logs.Print("Email: %s", user.Email)
		logs.Print("Name:  %s", user.Name)
		if profile := current.session.Profile(); profile != nil {
			logs.Print("Goal:  %s (%.0f kg, %.0f cm)", profile.Goal, profile.WeightKg, profile.HeightCm)
		} else {
			logs.Print("Goal:  no profile saved yet")
		}
		return nil
	},
}
