package config

import (
	"errors"
	"slices"
	"strings"
)

// PinnedLabels returns the labels of pinned folders in pin order.
func (c *Config) PinnedLabels() []string {
	labels := make([]string, 0, len(c.PinnedFolders))
	for _, p := range c.PinnedFolders {
		labels = append(labels, p.Label)
	}
	return labels
}

// FindPinnedByLabel returns the pinned folder with the given label.
func (c *Config) FindPinnedByLabel(label string) (*PinnedFolder, bool) {
	for i := range c.PinnedFolders {
		if c.PinnedFolders[i].Label == label {
			return &c.PinnedFolders[i], true
		}
	}
	return nil, false
}

// FindPinnedByPath returns the pinned folder with the given path.
func (c *Config) FindPinnedByPath(path string) (*PinnedFolder, bool) {
	for i := range c.PinnedFolders {
		if c.PinnedFolders[i].Path == path {
			return &c.PinnedFolders[i], true
		}
	}
	return nil, false
}

// PinFolder pins folder under label. An already pinned folder gets the new label.
func (c *Config) PinFolder(folder, label string) error {
	if folder == "" {
		return errors.New("folder is required")
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return errors.New("label is required")
	}
	if existing, ok := c.FindPinnedByPath(folder); ok {
		existing.Label = label
		return nil
	}
	c.PinnedFolders = append(c.PinnedFolders, PinnedFolder{Path: folder, Label: label})
	return nil
}

// UnpinFolder removes the pinned folder with the given path. It reports
// whether anything was removed.
func (c *Config) UnpinFolder(folder string) bool {
	before := len(c.PinnedFolders)
	c.PinnedFolders = slices.DeleteFunc(c.PinnedFolders, func(p PinnedFolder) bool {
		return p.Path == folder
	})
	return len(c.PinnedFolders) != before
}

// RenamePinned changes the label of a pinned folder.
func (c *Config) RenamePinned(oldLabel, newLabel string) error {
	newLabel = strings.TrimSpace(newLabel)
	if newLabel == "" {
		return errors.New("new label is required")
	}
	pinned, ok := c.FindPinnedByLabel(oldLabel)
	if !ok {
		return errors.New("the selected pinned folder could not be found")
	}
	pinned.Label = newLabel
	return nil
}

// AddRecent moves folder to the front of the recent list and trims it to MaxRecents.
func (c *Config) AddRecent(folder string) {
	limit := c.MaxRecents
	if limit < MinRecents || limit > MaxRecents {
		limit = DefaultMaxRecents
	}
	recents := slices.DeleteFunc(slices.Clone(c.RecentFolders), func(f string) bool {
		return f == folder
	})
	recents = append([]string{folder}, recents...)
	if len(recents) > limit {
		recents = recents[:limit]
	}
	c.RecentFolders = recents
}

// DeleteRecent removes folder from the recent list.
func (c *Config) DeleteRecent(folder string) bool {
	before := len(c.RecentFolders)
	c.RecentFolders = slices.DeleteFunc(c.RecentFolders, func(f string) bool {
		return f == folder
	})
	return len(c.RecentFolders) != before
}

// ClearRecents empties the recent list.
func (c *Config) ClearRecents() {
	c.RecentFolders = []string{}
}
