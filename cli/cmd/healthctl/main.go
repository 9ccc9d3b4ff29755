// Command healthctl submits vitals readings to a HealthTech server and prints
// the session log from a terminal.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type globalOpts struct {
	server  string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	root := &cobra.Command{
		Use:           "healthctl",
		Short:         "HealthTech vitals scoring client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.server, "server", "http://localhost:8080", "HealthTech server base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "HTTP request timeout")

	root.AddCommand(newCheckCmd(opts))
	root.AddCommand(newRecordsCmd(opts))
	return root
}
