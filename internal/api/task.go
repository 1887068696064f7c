// Package api talks to the remote task collection over REST.
package api

import "github.com/samber/lo"

// Status is the lifecycle state of a task as the server knows it.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// Statuses returns all statuses in display order.
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusDone}
}

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label is the human form shown in the UI ("IN PROGRESS" instead of
// "IN_PROGRESS").
func (s Status) Label() string {
	switch s {
	case StatusInProgress:
		return "IN PROGRESS"
	default:
		return string(s)
	}
}

// Next cycles forward through the statuses, wrapping after DONE.
func (s Status) Next() Status {
	all := Statuses()
	for i, v := range all {
		if v == s {
			return all[(i+1)%len(all)]
		}
	}
	return StatusTodo
}

// Task is a persisted to-do item. Description and DueDate are pointers so
// that "absent" and "empty string" stay distinct on the wire; DueDate is an
// ISO calendar date (YYYY-MM-DD) with no time component.
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      Status  `json:"status"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// Draft is the unsaved form-held shape of a task, sent whole on both create
// and update (updates are full replacements, not patches).
type Draft struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      Status  `json:"status"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// DraftOf rebuilds the draft matching an existing task, used by inline
// status changes to replace every field but the status.
func DraftOf(t Task) Draft {
	return Draft{
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		DueDate:     t.DueDate,
	}
}

// DescriptionOrEmpty unwraps an optional string field.
func DescriptionOrEmpty(p *string) string {
	return lo.FromPtr(p)
}

// OptionalString maps "" back to absent.
func OptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return lo.ToPtr(s)
}
