//go:build unix

package runner

import "syscall"

// detachedSysProcAttr puts the child in a new session so it does not receive
// the launcher's terminal signals and survives the launcher exiting.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid: true,
	}
}
