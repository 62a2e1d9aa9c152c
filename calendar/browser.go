package calendar

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/Hashim-Bhagad/FitFork/logs"
)

// browserCommand picks the platform opener for a URL.
func browserCommand(target string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

// OpenBrowser launches the system browser at target. The caller falls back
// to printing the URL when no opener is available.
func OpenBrowser(target string) error {
	name, args := browserCommand(target)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s not found; open the URL manually", name)
	}
	logs.Printv("Running command: %s %v", name, args)
	return exec.Command(name, args...).Start()
}
