// Package task implements a personal task list stored in a flat text file.
//
// Each task is one line of a comma-delimited file (by default ~/.rtd.csv).
// The first line is a header naming the seven fields. Records are updated in
// place by splicing byte ranges of the file, so a record may grow or shrink
// without rewriting unrelated lines by hand.
//
// The public API mirrors the CLI commands:
//   - Add, Complete, Uncomplete, Delete, Restore, Destroy for the task lifecycle
//   - List, Tasks, Get for querying
//
// The store takes no locks. Two processes mutating the same file at the same
// time race, and one of the writes may be lost or interleaved.
package task

import (
	"strings"
	"time"
)

// Task is a single item on the list.
type Task struct {
	// ID is unique within a store and assigned as max(existing)+1.
	ID uint32 `json:"id" yaml:"id"`

	// Name is the task text. It may contain commas and newlines.
	Name string `json:"name" yaml:"name"`

	// Completed reports whether the task is done.
	Completed bool `json:"completed" yaml:"completed"`

	// Deleted reports whether the task is soft-deleted.
	Deleted bool `json:"deleted" yaml:"deleted"`

	// CreatedAt is when the task was added, in Unix seconds.
	CreatedAt *int64 `json:"created_at,omitempty" yaml:"created_at,omitempty"`

	// CompletedAt is when the task was completed (nil if not completed).
	CompletedAt *int64 `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`

	// DeletedAt is when the task was soft-deleted (nil if not deleted).
	DeletedAt *int64 `json:"deleted_at,omitempty" yaml:"deleted_at,omitempty"`
}

// Filter selects which tasks List returns.
type Filter string

const (
	// FilterAll matches every task, including soft-deleted ones.
	FilterAll Filter = "all"

	// FilterCompleted matches completed tasks.
	FilterCompleted Filter = "completed"

	// FilterUncompleted matches tasks that are not completed.
	FilterUncompleted Filter = "uncompleted"

	// FilterDeleted matches soft-deleted tasks.
	FilterDeleted Filter = "deleted"
)

// ValidFilters returns all valid filter values.
func ValidFilters() []Filter {
	return []Filter{FilterAll, FilterCompleted, FilterUncompleted, FilterDeleted}
}

// IsValid returns true if the filter is a known value.
func (f Filter) IsValid() bool {
	for _, valid := range ValidFilters() {
		if f == valid {
			return true
		}
	}
	return false
}

// Match reports whether t passes the filter.
func (f Filter) Match(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterUncompleted:
		return !t.Completed
	case FilterDeleted:
		return t.Deleted
	default:
		return true
	}
}

// ValidateName checks that a name can be stored and read back unchanged.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.Contains(name, CommaToken) || strings.Contains(name, NewlineToken) {
		return ErrReservedToken
	}
	return nil
}

// Timestamp returns the Unix seconds of t as an optional timestamp.
func Timestamp(t time.Time) *int64 {
	seconds := t.Unix()
	return &seconds
}
