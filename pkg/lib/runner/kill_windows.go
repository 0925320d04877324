//go:build windows

package runner

import (
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
)

type systemTerminator struct{}

func newSystemTerminator(any) Terminator {
	return systemTerminator{}
}

// Terminate runs taskkill against the executable's image name.
func (systemTerminator) Terminate(executablePath string) (string, error) {
	cmd := exec.Command("taskkill", "/F", "/IM", lib.BaseName(executablePath))
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("taskkill: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
