package matcher

import "github.com/shirou/gopsutil/v4/process"

type systemProcess struct {
	*process.Process
}

func (p systemProcess) PID() int32 {
	return p.Pid
}

// SystemTable enumerates the OS process table in a single pass.
func SystemTable() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		out = append(out, systemProcess{p})
	}
	return out, nil
}
