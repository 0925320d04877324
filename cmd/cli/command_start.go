package main

import (
	"errors"
	"fmt"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/runner"
	"github.com/spf13/cobra"
)

func newStartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start <name> [name...]",
		Short: "Start the named programs unless they are already running",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("at least one program name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			request, err := cfg.Registry().Request(lib.ActionStart, args)
			if err != nil {
				return err
			}
			r := runner.NewRunner(runner.Config{Sink: lineSink{w: cmd.OutOrStdout()}})
			return failedRecords(r.Execute(request))
		},
	}
	return cmd
}

// failedRecords turns per-program failures into a non-zero exit once the
// whole batch has been reported.
func failedRecords(records []lib.OutcomeRecord) error {
	failed := 0
	for _, r := range records {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d program(s) failed", failed, len(records))
	}
	return nil
}
