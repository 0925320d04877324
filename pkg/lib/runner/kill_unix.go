//go:build unix

package runner

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
	"golang.org/x/sys/unix"
)

// pidFinder lists pids of processes named after an executable.
type pidFinder interface {
	Find(executablePath string) []int32
}

type systemTerminator struct {
	finder pidFinder
}

func newSystemTerminator(finder pidFinder) Terminator {
	return systemTerminator{finder: finder}
}

// Terminate sends SIGKILL to every process named after the executable,
// except the launcher itself.
func (t systemTerminator) Terminate(executablePath string) (string, error) {
	name := lib.BaseName(executablePath)
	self := int32(os.Getpid())

	var (
		out    strings.Builder
		errs   []error
		killed int
	)
	for _, pid := range t.finder.Find(executablePath) {
		if pid == self {
			continue
		}
		if err := unix.Kill(int(pid), unix.SIGKILL); err != nil {
			if errors.Is(err, unix.ESRCH) {
				// Exited between the scan and the kill.
				continue
			}
			errs = append(errs, fmt.Errorf("pid %d: %w", pid, err))
			continue
		}
		killed++
		fmt.Fprintf(&out, "SUCCESS: The process %q with PID %d has been terminated.\n", name, pid)
	}

	if len(errs) > 0 {
		return out.String(), fmt.Errorf("terminate %s: %w", name, errors.Join(errs...))
	}
	if killed == 0 {
		return out.String(), fmt.Errorf("terminate %s: process not found", name)
	}
	return out.String(), nil
}
