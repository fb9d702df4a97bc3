// Package runner executes external commands.
package runner

import (
	"fmt"
	"os/exec"
)

// Run executes a command and returns its combined output. On failure the
// error carries the command line and the output.
func Run(cmd *exec.Cmd) ([]byte, error) {
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("command failed: %s: %w\n%s", cmd.String(), err, string(output))
	}
	return output, nil
}
