package cmd

import (
	"bufio"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/chat"
	"github.com/Hashim-Bhagad/FitFork/logs"
)

var chefCmd = &cobra.Command{
	Use:   "chef",
	Short: "Talk to Chef Discovery to build your profile conversationally",
	Long: "Talk to Chef Discovery to build your profile conversationally. The chef " +
		"resumes your earlier conversation and tells you when it has gathered enough " +
		"to generate a plan. Type /clear to restart the conversation, /quit to leave.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSession(); err != nil {
			return err
		}
		ctrl := chat.NewController(current.gateway, current.session)
		if err := ctrl.LoadHistory(cmd.Context()); err != nil {
			logs.Error("Could not load the earlier conversation: %s", err)
		}
		for _, turn := range ctrl.Turns() {
			printTurn(turn)
		}

		scanner := bufio.NewScanner(os.Stdin)
		for {
			if _, err := os.Stdout.WriteString("you> "); err != nil {
				return err
			}
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())

			switch line {
			case "/quit", "/exit":
				return nil
			case "/clear":
				if ctrl.Clear(cmd.Context(), func() bool { return confirm("Clear conversation history?") }) {
					printTurn(ctrl.Turns()[0])
				}
				continue
			}

			before := len(ctrl.Turns())
			if err := ctrl.Send(cmd.Context(), line); err != nil {
				// The expiry watcher has already torn the session down and
				// told the user; nothing here is worth keeping.
				return err
			}
			turns := ctrl.Turns()
			for _, turn := range turns[before:] {
				if turn.Role == chat.RoleAssistant {
					printTurn(turn)
				}
			}
			if ctrl.IsComplete() {
				logs.Print("")
				logs.Print("Chef says your plan is ready! Run \"fitfork plan generate\" whenever you like.")
			}
		}
	},
}

func printTurn(turn api.ChatTurn) {
	if turn.Role == chat.RoleUser {
		logs.Print("you>  %s", turn.Content)
		return
	}
	logs.Print("chef> %s", turn.Content)
	if len(turn.Suggestions) > 0 {
		logs.Print("      (try: %s)", strings.Join(turn.Suggestions, " | "))
	}
}
