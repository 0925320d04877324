package main

import (
	"fmt"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/runner"
	"github.com/spf13/cobra"
)

func newStopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Force-terminate every registered program that is running",
		Long: "Force-terminate every registered program that is running.\n\n" +
			"Processes are matched by executable file name, so every instance with that\n" +
			"name is terminated, including ones not started by lazyl.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			request, err := cfg.Registry().Request(lib.ActionStop, nil)
			if err != nil {
				return err
			}
			r := runner.NewRunner(runner.Config{Sink: lineSink{w: cmd.OutOrStdout()}})
			records := r.Execute(request)
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to stop.")
			}
			return failedRecords(records)
		},
	}
	return cmd
}
