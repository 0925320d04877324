package main

import (
	"errors"
	"fmt"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/config"
	"github.com/spf13/cobra"
)

const configEnvHint = config.EnvPath

// loadConfig resolves and loads the config file. An unparsable file is
// reported on stderr and replaced by defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	flagValue, _ := cmd.Flags().GetString("config")
	path, err := config.ResolvePath(flagValue)
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		if !errors.Is(err, config.ErrInvalidConfig) {
			return nil, "", err
		}
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v. Using default settings.\n", err)
	}
	return cfg, path, nil
}
