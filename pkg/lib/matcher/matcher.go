// Package matcher answers whether an executable is currently running by
// scanning the live OS process table for its file name.
package matcher

import (
	"io"
	"log"
	"slices"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
	"github.com/shirou/gopsutil/v4/process"
)

var logger = log.New(io.Discard, "matcher: ", log.LstdFlags)

// SetLogOutput redirects debug logging of the package.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Process is the part of a process table entry the matcher looks at.
type Process interface {
	PID() int32
	Name() (string, error)
	Status() ([]string, error)
}

// Table lists the processes visible to the current user at the time of the call.
type Table func() ([]Process, error)

// Matcher compares executable base names against the process table.
// The table is enumerated again on every query; nothing is cached.
type Matcher struct {
	table Table
}

// New creates a Matcher over the system process table.
func New() *Matcher {
	return &Matcher{table: SystemTable}
}

// NewWithTable creates a Matcher over a custom table.
func NewWithTable(table Table) *Matcher {
	return &Matcher{table: table}
}

// IsRunning reports whether any visible process has the same file name as
// executablePath. Two executables sharing a file name in different
// directories are indistinguishable.
func (m *Matcher) IsRunning(executablePath string) bool {
	return len(m.scan(executablePath, true)) > 0
}

// Find returns the pids of all visible processes whose name equals the file
// name of executablePath.
func (m *Matcher) Find(executablePath string) []int32 {
	return m.scan(executablePath, false)
}

func (m *Matcher) scan(executablePath string, first bool) []int32 {
	name := lib.BaseName(executablePath)
	if name == "" {
		return nil
	}

	procs, err := m.table()
	if err != nil {
		logger.Printf("Failed to list processes: %v", err)
		return nil
	}

	var pids []int32
	for _, p := range procs {
		procName, err := p.Name()
		if err != nil {
			// Permission denied or the process is gone already; partial visibility is fine.
			continue
		}
		if procName != name {
			continue
		}
		if isZombie(p) {
			logger.Printf("Skipping zombie %s (pid %d)", procName, p.PID())
			continue
		}
		pids = append(pids, p.PID())
		if first {
			break
		}
	}
	return pids
}

func isZombie(p Process) bool {
	status, err := p.Status()
	if err != nil {
		return false
	}
	return slices.Contains(status, process.Zombie)
}
