package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/howeyc/gopass"

	"github.com/Hashim-Bhagad/FitFork/api"
	"github.com/Hashim-Bhagad/FitFork/logs"
	"github.com/Hashim-Bhagad/FitFork/session"
)

func prompt(label string, echo bool) (string, error) {
	fmt.Print(label + ": ")
	if echo {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Scan()
		return scanner.Text(), scanner.Err()
	}
	passBytes, err := gopass.GetPasswd()
	return string(passBytes), err
}

func promptForCredentials() (string, string, error) {
	email, err := prompt("Email", true)
	if err != nil {
		return "", "", err
	}
	password, err := prompt("Password", false)
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

func confirm(question string) bool {
	answer, err := prompt(question+" [y/N]", true)
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// requireSession guards commands that need an authenticated session.
func requireSession() error {
	if current.session.State() != session.Authenticated {
		return errors.New("you are not signed in. Run \"fitfork login\" first")
	}
	return nil
}

// requireProfile guards commands that need a completed profile.
func requireProfile() (*api.Profile, error) {
	if err := requireSession(); err != nil {
		return nil, err
	}
	profile := current.session.Profile()
	if profile == nil {
		return nil, errors.New("complete your profile first: run \"fitfork profile save\" or \"fitfork chef\"")
	}
	return profile, nil
}

// reportSteps prints the degraded steps of a login flow so the tolerance is
// visible without failing the command.
func reportSteps(steps []session.StepResult) {
	for _, step := range steps {
		switch step.Outcome {
		case session.OutcomeDegraded:
			logs.Printv("step %s degraded: %s", step.Step, step.Detail)
		case session.OutcomeFailed:
			logs.Printv("step %s failed: %s", step.Step, step.Detail)
		default:
			logs.Printv("step %s ok", step.Step)
		}
	}
}
