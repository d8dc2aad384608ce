package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// Environment variables passed to extension binaries.
const (
	EnvCashBookFile = "GCB_CASHBOOK_FILE"
	EnvSettingsFile = "GCB_SETTINGS_FILE"
	EnvClosesFile   = "GCB_CLOSES_FILE"
)

// RunExtension attempts to find and execute an external gcb-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "gcb-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables.
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvCashBookFile+"="+*cashbookFile)
	cmd.Env = append(cmd.Env, EnvSettingsFile+"="+*settingsFile)
	cmd.Env = append(cmd.Env, EnvClosesFile+"="+*closesFile)

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}
