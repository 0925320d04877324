package lib

import (
	"fmt"
	"strings"
	"time"
)

// Action is the batch operation requested for a set of programs.
type Action int

const (
	ActionUnspecified Action = iota
	ActionStart
	ActionStop
)

func (a Action) String() string {
	switch a {
	case ActionStart:
		return "start"
	case ActionStop:
		return "stop"
	default:
		return "unspecified"
	}
}

// OutcomeStatus describes what happened to one program during a batch.
type OutcomeStatus int

const (
	OutcomeUnspecified OutcomeStatus = iota
	OutcomeAlreadyRunning
	OutcomeStarted
	OutcomeTerminated
	OutcomeTerminateFailed
)

func (s OutcomeStatus) String() string {
	switch s {
	case OutcomeAlreadyRunning:
		return "already_running"
	case OutcomeStarted:
		return "started"
	case OutcomeTerminated:
		return "terminated"
	case OutcomeTerminateFailed:
		return "terminate_failed"
	default:
		return "unspecified"
	}
}

// ProgramEntry is a named executable known to the registry.
type ProgramEntry struct {
	Name           string `yaml:"name"`
	ExecutablePath string `yaml:"path"`
}

// ActionRequest is consumed once by the runner.
// ID is filled with a fresh identifier when empty.
type ActionRequest struct {
	ID      string
	Entries []ProgramEntry
	Action  Action
}

// OutcomeRecord is the result for a single entry of a request.
type OutcomeRecord struct {
	Timestamp   time.Time
	ProgramName string
	Status      OutcomeStatus
	Detail      string
	// Err is set when spawning or terminating failed.
	Err error
}

const timestampLayout = "15:04"

// Lines renders the record as log lines, first line prefixed with the timestamp.
func (r OutcomeRecord) Lines() []string {
	ts := "[" + r.Timestamp.Format(timestampLayout) + "]"
	switch r.Status {
	case OutcomeAlreadyRunning:
		return []string{fmt.Sprintf("%s %s is %s", ts, r.ProgramName, r.Detail)}
	case OutcomeStarted:
		if r.Err != nil {
			return []string{fmt.Sprintf("%s Starting %s... %s", ts, r.ProgramName, r.Detail)}
		}
		return []string{fmt.Sprintf("%s Starting %s...", ts, r.ProgramName)}
	case OutcomeTerminated:
		lines := []string{fmt.Sprintf("%s Terminating %s...", ts, r.ProgramName)}
		for _, l := range strings.Split(r.Detail, "\n") {
			l = strings.TrimRight(l, "\r ")
			if l != "" {
				lines = append(lines, l)
			}
		}
		return lines
	case OutcomeTerminateFailed:
		return []string{fmt.Sprintf("%s Error terminating %s: %s", ts, r.ProgramName, r.Detail)}
	default:
		return []string{fmt.Sprintf("%s %s: %s", ts, r.ProgramName, r.Detail)}
	}
}

// String joins Lines with newlines.
func (r OutcomeRecord) String() string {
	return strings.Join(r.Lines(), "\n")
}
