package runner

import (
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
)

// stop returns false when the entry is not running; such entries produce no record.
func (runner *Runner) stop(entry lib.ProgramEntry) (lib.OutcomeRecord, bool) {
	if !runner.matcher.IsRunning(entry.ExecutablePath) {
		logger.Printf("%s is not running, skipping", entry.Name)
		return lib.OutcomeRecord{}, false
	}

	// Termination is by file name, so every instance with that name goes down.
	output, err := runner.terminator.Terminate(entry.ExecutablePath)
	if err != nil {
		logger.Printf("Failed to terminate %s: %v", entry.Name, err)
		return runner.record(entry, lib.OutcomeTerminateFailed, err.Error(), err), true
	}
	return runner.record(entry, lib.OutcomeTerminated, output, nil), true
}
