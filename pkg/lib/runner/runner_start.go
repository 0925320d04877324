package runner

import (
	"errors"
	"os/exec"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
)

const (
	detailAlreadyRunning = "already running"
	detailStarting       = "starting..."
)

func (runner *Runner) start(entry lib.ProgramEntry) lib.OutcomeRecord {
	if runner.matcher.IsRunning(entry.ExecutablePath) {
		logger.Printf("%s is already running", entry.Name)
		return runner.record(entry, lib.OutcomeAlreadyRunning, detailAlreadyRunning, nil)
	}

	if err := runner.spawner.Spawn(entry.ExecutablePath); err != nil {
		logger.Printf("Failed to start %s: %v", entry.Name, err)
		return runner.record(entry, lib.OutcomeStarted, "failed to start: "+err.Error(), err)
	}
	return runner.record(entry, lib.OutcomeStarted, detailStarting, nil)
}

type systemSpawner struct{}

func (systemSpawner) Spawn(executablePath string) error {
	_, err := StartDetached(executablePath)
	return err
}

// StartDetached starts command in its own session with stdio on the null
// device, so it outlives the launcher. The child is reaped in the background
// when it exits; nothing else about it is tracked.
func StartDetached(command string, args ...string) (int, error) {
	if command == "" {
		return 0, errors.New("command is required")
	}

	cmd := exec.Command(command, args...)
	cmd.SysProcAttr = detachedSysProcAttr()
	// Stdin, Stdout and Stderr are left nil, so they go to the null device.

	logger.Printf("Starting %s %v", command, args)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid

	go func() {
		err := cmd.Wait()
		logger.Printf("Process %d (%s) exited: %v", pid, command, err)
	}()

	return pid, nil
}
