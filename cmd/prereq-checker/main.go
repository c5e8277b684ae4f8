package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/openshift/managed-upgrade-prechecks/config"
)

const (
	exitBlocked = 1
	exitError   = 2
)

// errBlocked is returned by the check command when the report verdict blocks the upgrade.
var errBlocked = errors.New("prerequisite checks did not pass")

func main() {
	err := newRootCmd(os.Stdout, os.Stderr).Execute()
	if err == nil {
		return
	}
	if errors.Is(err, errBlocked) {
		os.Exit(exitBlocked)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitError)
}

type rootOptions struct {
	configPath string
	debug      bool
}

func newRootCmd(out io.Writer, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Run upgrade prerequisite checks against a cluster",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", fmt.Sprintf("path to the checker configuration file (default $%s)", config.EnvConfigPath))
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newListCmd(opts))
	return root
}
