// Package registry keeps the named programs available for batch actions.
package registry

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib"
)

// ErrUnknownProgram is returned for names that are not registered.
var ErrUnknownProgram = errors.New("unknown program")

// Registry is an ordered map from program name to entry.
// It is not safe for concurrent use.
type Registry struct {
	order   []string
	entries map[string]lib.ProgramEntry
}

// New creates a registry holding entries in the given order. Later
// duplicates replace the path of earlier ones.
func New(entries ...lib.ProgramEntry) *Registry {
	r := &Registry{entries: make(map[string]lib.ProgramEntry)}
	for _, e := range entries {
		_ = r.Add(e.Name, e.ExecutablePath)
	}
	return r
}

// Add registers or updates a program. An existing name keeps its position.
func (r *Registry) Add(name, executablePath string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("program name is required")
	}
	if executablePath == "" {
		return fmt.Errorf("program %s: executable path is required", name)
	}
	if _, ok := r.entries[name]; !ok {
		r.order = append(r.order, name)
	}
	r.entries[name] = lib.ProgramEntry{Name: name, ExecutablePath: executablePath}
	return nil
}

// AddPath registers a program under the file name of its path, the way a
// file picker adds programs. It returns the registered name.
func (r *Registry) AddPath(executablePath string) (string, error) {
	if executablePath == "" {
		return "", errors.New("executable path is required")
	}
	name := filepath.Base(executablePath)
	return name, r.Add(name, executablePath)
}

// Remove deletes a program by name.
func (r *Registry) Remove(name string) error {
	if _, ok := r.entries[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProgram, name)
	}
	delete(r.entries, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (lib.ProgramEntry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

// Len returns the number of registered programs.
func (r *Registry) Len() int {
	return len(r.order)
}

// Names returns program names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Entries returns a copy of all entries in registration order.
func (r *Registry) Entries() []lib.ProgramEntry {
	out := make([]lib.ProgramEntry, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name])
	}
	return out
}

// Request builds the batch for an action. START covers the selected names
// in registry order; STOP sweeps every registered program regardless of
// selection.
func (r *Registry) Request(action lib.Action, selected []string) (lib.ActionRequest, error) {
	req := lib.ActionRequest{ID: lib.NewID(), Action: action}
	switch action {
	case lib.ActionStart:
		picked := make(map[string]bool, len(selected))
		for _, name := range selected {
			if _, ok := r.entries[name]; !ok {
				return lib.ActionRequest{}, fmt.Errorf("%w: %s", ErrUnknownProgram, name)
			}
			picked[name] = true
		}
		for _, name := range r.order {
			if picked[name] {
				req.Entries = append(req.Entries, r.entries[name])
			}
		}
	case lib.ActionStop:
		req.Entries = r.Entries()
	default:
		return lib.ActionRequest{}, fmt.Errorf("unsupported action %s", action)
	}
	return req, nil
}
