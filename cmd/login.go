package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/logs"
)

var login = &cobra.Command{
	Use:   "login",
	Short: "Sign in to FitFork and persist the session locally",
	Long: "Sign in to FitFork and persist the session locally. The session token, " +
		"your identity, and any saved profile and nutrition targets are cached so " +
		"subsequent commands need no fresh sign-in.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, password, err := promptForCredentials()
		if err != nil {
			return err
		}
		steps, err := current.flow.Login(cmd.Context(), email, password)
		reportSteps(steps)
		if err != nil {
			return err
		}
		user := current.session.User()
		logs.Print("Signed in as %s.", user.Email)
		if current.session.Profile() == nil {
			logs.Print("No saved profile yet. Run \"fitfork profile save\" or talk to \"fitfork chef\" to set one up.")
		}
		return nil
	},
}

var register = &cobra.Command{
	Use:   "register",
	Short: "Create a FitFork account and sign in",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := prompt("Name", true)
		if err != nil {
			return err
		}
		email, password, err := promptForCredentials()
		if err != nil {
			return err
		}
		steps, err := current.flow.Register(cmd.Context(), email, password, name)
		reportSteps(steps)
		if err != nil {
			return err
		}
		logs.Print("Welcome to FitFork, %s! You are signed in.", current.session.User().Name)
		return nil
	},
}

var logout = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear all locally cached session data",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current.session.Logout()
		logs.Print("Signed out. All cached session data has been cleared.")
		return nil
	},
}
