//go:build windows

package runner

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedSysProcAttr starts the child without a console in its own process
// group so closing the launcher does not take it down.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP | windows.DETACHED_PROCESS,
	}
}
