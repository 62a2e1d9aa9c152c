package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/calendar"
	"github.com/Hashim-Bhagad/FitFork/logs"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Connect your calendar and export meal plans to it",
}

var calendarConnect = &cobra.Command{
	Use:   "connect",
	Short: "Authorize FitFork to write to your Google calendar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		authURL, err := current.calendar.Connect(cmd.Context())
		if err != nil {
			return err
		}
		logs.Print("Your browser has been opened to authorize FitFork:")
		logs.Print("")
		logs.Print("\t%s", authURL)
		logs.Print("")
		returned, err := prompt("After authorizing, paste the URL you were redirected to (or press Enter to skip)", true)
		if err != nil || returned == "" {
			return err
		}
		notice, _, err := calendar.ParseCallback(returned)
		if err != nil {
			return err
		}
		printNotice(notice)
		return nil
	},
}

var calendarStatus = &cobra.Command{
	Use:   "status",
	Short: "Show whether a calendar is connected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		status, err := current.calendar.Status(cmd.Context())
		if err != nil {
			return err
		}
		if !status.Connected {
			logs.Print("No calendar connected. Run \"fitfork calendar connect\".")
			return nil
		}
		logs.Print("Calendar connected (%s).", status.Email)
		return nil
	},
}

var calendarSync = &cobra.Command{
	Use:   "sync",
	Short: "Export the latest meal plan to your calendar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := current.calendar.Sync(cmd.Context()); err != nil {
			return err
		}
		logs.Print("Meal plan exported to your calendar.")
		return nil
	},
}

var calendarDisconnect = &cobra.Command{
	Use:   "disconnect",
	Short: "Revoke FitFork's calendar access",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		if err := current.calendar.Disconnect(cmd.Context()); err != nil {
			return err
		}
		logs.Print("Calendar disconnected.")
		return nil
	},
}

func printNotice(notice *calendar.Notice) {
	if notice == nil {
		logs.Print("That URL carried no calendar outcome; check \"fitfork calendar status\".")
		return
	}
	if notice.Connected {
		logs.Print("Calendar connected.")
		return
	}
	if notice.Detail != "" {
		logs.Error("Calendar connection failed: %s", notice.Detail)
		return
	}
	logs.Error("Calendar connection failed.")
}

func init() {
	calendarCmd.AddCommand(calendarConnect, calendarStatus, calendarSync, calendarDisconnect)
}
