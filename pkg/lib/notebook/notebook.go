// Package notebook launches a notebook server against a chosen folder.
package notebook

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/config"
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/runner"
)

// ErrNotebookNotFound is returned when the notebook command is not on PATH.
var ErrNotebookNotFound = errors.New("notebook command not found")

// Options are the values the user picked for one launch.
type Options struct {
	Folder     string // optional; the server's default directory when empty
	Port       string // defaults to the configured port
	MaxRecents string // defaults to the configured limit
}

// StartFunc starts a detached process and returns its pid.
type StartFunc func(command string, args ...string) (int, error)

// Launcher validates options, updates the config and starts the server.
type Launcher struct {
	start StartFunc
}

// NewLauncher creates a Launcher that starts detached processes.
func NewLauncher() *Launcher {
	return &Launcher{start: runner.StartDetached}
}

// NewLauncherWithStart creates a Launcher with a custom process starter.
func NewLauncherWithStart(start StartFunc) *Launcher {
	return &Launcher{start: start}
}

// Args builds the notebook command line arguments.
func Args(folder, port string) []string {
	var args []string
	if folder != "" {
		args = append(args, "--notebook-dir="+folder)
	}
	return append(args, "--port="+port)
}

// Launch validates opts, records the folder and preferences on cfg and starts
// the notebook server. The caller saves cfg afterwards. Validation failures
// leave cfg untouched.
func (l *Launcher) Launch(cfg *config.Config, opts Options) (int, error) {
	port := strings.TrimSpace(opts.Port)
	if port == "" {
		port = cfg.Port
	}
	if _, err := strconv.Atoi(port); err != nil {
		return 0, fmt.Errorf("port must be an integer: %q", port)
	}

	maxRecents := cfg.MaxRecents
	if s := strings.TrimSpace(opts.MaxRecents); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < config.MinRecents || n > config.MaxRecents {
			return 0, fmt.Errorf("max recent folders must be an integer between %d and %d", config.MinRecents, config.MaxRecents)
		}
		maxRecents = n
	}

	folder := strings.TrimSpace(opts.Folder)
	if folder != "" {
		info, err := os.Stat(folder)
		if err != nil || !info.IsDir() {
			return 0, fmt.Errorf("the folder does not exist: %s", folder)
		}
	}

	cfg.Port = port
	cfg.MaxRecents = maxRecents
	if folder != "" {
		cfg.AddRecent(folder)
	}

	pid, err := l.start(cfg.NotebookCommand, Args(folder, port)...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("%w: could not find %q on PATH, ensure it is installed", ErrNotebookNotFound, cfg.NotebookCommand)
		}
		return 0, fmt.Errorf("starting %s: %w", cfg.NotebookCommand, err)
	}
	return pid, nil
}
