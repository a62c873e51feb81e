package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	cmd := NewRootCommand(out, errOut)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(errOut, "Error: %s\n", err)
		}
		return 1
	}
	return 0
}
