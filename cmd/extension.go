package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// Environment variables shared with extensions. FINPLAN_SNAPSHOT is also read
// by fp itself.
const (
	EnvSnapshotFile = "FINPLAN_SNAPSHOT"
	EnvVerbose      = "FINPLAN_VERBOSE"
	EnvModel        = "FINPLAN_MODEL"
)

// RunExtension attempts to find and execute an external fp-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(ctx context.Context, subcommand string, args []string) (bool, int) {
	name := "fp-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.CommandContext(ctx, lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = append(os.Environ(),
		EnvSnapshotFile+"="+snapshotPath(),
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
