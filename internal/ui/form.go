package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"

	"taskger/internal/api"
)

type formField int

const (
	fieldTitle formField = iota
	fieldDescription
	fieldStatus
	fieldDue
	fieldCount
)

// form backs both the add and the edit surface. A non-nil editing task makes
// it an edit form; its error line and submit lock belong to this surface
// only, so a failed add can never clobber a failed edit and vice versa.
type form struct {
	title      textinput.Model
	desc       textarea.Model
	due        textinput.Model
	status     int
	focus      formField
	keys       keyMap
	editing    *api.Task
	errMsg     string
	submitting bool
}

func newForm(task *api.Task, keys keyMap) form {
	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 0
	title.Width = 48

	desc := textarea.New()
	desc.Placeholder = "Description (optional)"
	desc.CharLimit = 0
	desc.SetWidth(48)
	desc.SetHeight(3)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD (optional)"
	due.CharLimit = 10
	due.Width = 12

	f := form{title: title, desc: desc, due: due, keys: keys}
	if task != nil {
		t := *task
		f.editing = &t
		f.title.SetValue(t.Title)
		f.desc.SetValue(api.DescriptionOrEmpty(t.Description))
		if t.DueDate != nil {
			f.due.SetValue(*t.DueDate)
		}
		for i, s := range api.Statuses() {
			if s == t.Status {
				f.status = i
			}
		}
	}
	f.title.Focus()
	return f
}

func (f form) isEdit() bool {
	return f.editing != nil
}

func (f form) heading() string {
	if f.isEdit() {
		return "Edit Task"
	}
	return "Add Task"
}

// draft assembles the form's current values. The due date, being a plain
// text field here, is checked for the calendar-date shape the server expects.
func (f form) draft() (api.Draft, error) {
	due := strings.TrimSpace(f.due.Value())
	if due != "" {
		if _, err := time.Parse("2006-01-02", due); err != nil {
			return api.Draft{}, errors.New("Due date must be YYYY-MM-DD.")
		}
	}
	return api.Draft{
		Title:       f.title.Value(),
		Description: api.OptionalString(f.desc.Value()),
		Status:      api.Statuses()[f.status],
		DueDate:     api.OptionalString(due),
	}, nil
}

func (f form) focusField(field formField) form {
	f.focus = field
	f.title.Blur()
	f.desc.Blur()
	f.due.Blur()
	switch field {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.desc.Focus()
	case fieldDue:
		f.due.Focus()
	}
	return f
}

func (f form) cycleStatus(delta int) form {
	n := len(api.Statuses())
	f.status = (f.status + delta + n) % n
	return f
}

// update routes a key to the form. submit reports that the user asked to
// save; cancel that they backed out. While a save is in flight every key is
// swallowed, which is what keeps a double press from issuing two creates.
func (f form) update(msg tea.KeyMsg) (out form, submit, cancel bool, cmd tea.Cmd) {
	if f.submitting {
		return f, false, false, nil
	}
	switch {
	case key.Matches(msg, f.keys.Cancel):
		return f, false, true, nil
	case key.Matches(msg, f.keys.Confirm):
		// in the description the confirm key stays with the textarea
		if f.focus != fieldDescription {
			return f, true, false, nil
		}
	}
	switch msg.String() {
	case "tab":
		return f.focusField((f.focus + 1) % fieldCount), false, false, nil
	case "shift+tab":
		return f.focusField((f.focus + fieldCount - 1) % fieldCount), false, false, nil
	case "left":
		if f.focus == fieldStatus {
			return f.cycleStatus(-1), false, false, nil
		}
	case "right", " ":
		if f.focus == fieldStatus {
			return f.cycleStatus(1), false, false, nil
		}
	}

	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.desc, cmd = f.desc.Update(msg)
	case fieldDue:
		f.due, cmd = f.due.Update(msg)
	}
	return f, false, false, cmd
}

func (f form) view() string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render(f.heading()))
	b.WriteString("\n\n")

	b.WriteString(f.label(fieldTitle, "Title *"))
	b.WriteString("\n")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(f.label(fieldDescription, "Description"))
	b.WriteString("\n")
	b.WriteString(f.desc.View())
	b.WriteString("\n\n")

	b.WriteString(f.label(fieldStatus, "Status"))
	b.WriteString("  ")
	for i, s := range api.Statuses() {
		marker := "  "
		if i == f.status {
			marker = "› "
		}
		b.WriteString(marker + s.Label() + "  ")
	}
	b.WriteString("\n\n")

	b.WriteString(f.label(fieldDue, "Due Date"))
	b.WriteString("\n")
	b.WriteString(f.due.View())
	b.WriteString("\n")

	if f.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	action := f.heading()
	if f.submitting {
		action = "Saving..."
	}
	b.WriteString(helpStyle.Render(fmt.Sprintf("%s %s • tab next field • ←/→ status • %s cancel",
		f.keys.Confirm.Help().Key, action, f.keys.Cancel.Help().Key)))
	return b.String()
}

func (f form) label(field formField, text string) string {
	if f.focus == field {
		return fieldFocusStyle.Render(text)
	}
	return fieldLabelStyle.Render(text)
}
