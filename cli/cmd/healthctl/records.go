package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/healthtech/healthtech/cli/internal/client"
	"github.com/healthtech/healthtech/cli/internal/render"
)

func newRecordsCmd(opts *globalOpts) *cobra.Command {
	var dailyOnly bool

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Print the server's session log and daily summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := client.New(opts.server, opts.timeout).Snapshot(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !dailyOnly {
				_, _ = fmt.Fprintln(out, render.Title.Render("Health Records"))
				_, _ = fmt.Fprintln(out, render.Records(snap.Records))
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintln(out, render.Title.Render("Daily Summary"))
			_, _ = fmt.Fprintln(out, render.Daily(snap.Daily))
			return nil
		},
	}
	cmd.Flags().BoolVar(&dailyOnly, "daily", false, "print only the daily summary")
	return cmd
}
