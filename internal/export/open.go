package export

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenInViewer hands the exported file to the platform's default
// viewer. The viewer is started, not waited for; failure to open is
// the caller's to report and never fatal.
func OpenInViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
