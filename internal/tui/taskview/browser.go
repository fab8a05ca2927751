// File: browser.go
// Title: Browser Launch
// Description: Opens the work-order PDF URL in the platform's default
//              browser.

package taskview

import (
	"os/exec"
	"runtime"

	fterror "fieldtask/internal/core/error"
)

// openBrowser opens a URL with the platform opener
func openBrowser(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}

	if err := cmd.Start(); err != nil {
		return fterror.Wrap(err, "failed to open browser").
			WithCode(fterror.CodeEnvironmentError).
			WithOperation("taskview.openBrowser").
			WithDetail("url", url)
	}
	return nil
}
