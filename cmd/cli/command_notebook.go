package main

import (
	"fmt"
	"path/filepath"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/config"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/notebook"
	"github.com/spf13/cobra"
)

// newLauncher is replaced in tests.
var newLauncher = notebook.NewLauncher

func newNotebookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notebook",
		Short: "Launch a notebook server in a folder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			folder, _ := cmd.Flags().GetString("folder")
			if folder != "" {
				if folder, err = filepath.Abs(folder); err != nil {
					return err
				}
			}
			if label, _ := cmd.Flags().GetString("pinned"); label != "" {
				pinned, ok := cfg.FindPinnedByLabel(label)
				if !ok {
					return fmt.Errorf("no pinned folder labelled %q", label)
				}
				folder = pinned.Path
			}
			port, _ := cmd.Flags().GetString("port")
			maxRecents, _ := cmd.Flags().GetString("max-recents")
			if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
				switch config.Theme(theme) {
				case config.ThemeDark, config.ThemeLight:
					cfg.Theme = config.Theme(theme)
				default:
					return fmt.Errorf("theme must be %s or %s", config.ThemeDark, config.ThemeLight)
				}
			}

			pid, err := newLauncher().Launch(cfg, notebook.Options{Folder: folder, Port: port, MaxRecents: maxRecents})
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Notebook server launched (pid %d) on port %s.\n", pid, cfg.Port)
			return nil
		},
	}
	cmd.Flags().String("folder", "", "notebook directory")
	cmd.Flags().String("pinned", "", "use the pinned folder with this label")
	cmd.Flags().String("port", "", "port (default: last used, "+config.DefaultPort+")")
	cmd.Flags().String("max-recents", "", fmt.Sprintf("recent folders to keep (%d-%d)", config.MinRecents, config.MaxRecents))
	cmd.Flags().String("theme", "", "TUI theme to store: Dark or Light")
	return cmd
}
