package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskger/internal/api"
	"taskger/internal/config"
	"taskger/internal/view"
)

type uiMode int

const (
	modeList uiMode = iota
	modeForm
	modeSearch
)

type Model struct {
	engine *view.Engine
	repo   Repository
	keys   keyMap

	mode   uiMode
	cursor int
	form   form
	search textinput.Model
	spin   spinner.Model

	loading    bool
	confirmDel bool
	pendingDel *api.Task
	toastSeq   int
}

func New(repo Repository, cfg config.Config) Model {
	search := textinput.New()
	search.Placeholder = "title or description"
	search.Width = 24

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		engine:  view.NewEngine(),
		repo:    repo,
		keys:    newKeyMap(cfg.Keys),
		search:  search,
		spin:    sp,
		loading: true,
	}
}

func Run(repo Repository, cfg config.Config) error {
	program := tea.NewProgram(New(repo, cfg))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, loadTasksCmd(m.repo))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.engine.ClearNotification()
		}
		return m, nil
	case tasksLoadedMsg:
		m.loading = false
		m.engine.SetTasks(msg.tasks)
		m.cursor = clampCursor(m.cursor, len(m.engine.Snapshot().Tasks))
		return m, nil
	case loadFailedMsg:
		m.loading = false
		cmd := m.toast("Failed to fetch tasks", view.SeverityError)
		return m, cmd
	case createDoneMsg:
		m.mode = modeList
		m.form = form{}
		cmd := tea.Batch(m.toast("Task added!", view.SeveritySuccess), m.refresh())
		return m, cmd
	case createFailedMsg:
		m.form.submitting = false
		m.form.errMsg = "Failed to add task"
		cmd := m.toast("Failed to add task", view.SeverityError)
		return m, cmd
	case editDoneMsg:
		m.engine.ClearPending(msg.id, view.OpEdit)
		m.mode = modeList
		m.form = form{}
		cmd := tea.Batch(m.toast("Task updated!", view.SeveritySuccess), m.refresh())
		return m, cmd
	case editFailedMsg:
		m.engine.ClearPending(msg.id, view.OpEdit)
		m.form.submitting = false
		m.form.errMsg = "Failed to update task"
		cmd := m.toast("Failed to update task", view.SeverityError)
		return m, cmd
	case statusDoneMsg:
		m.engine.ClearPending(msg.id, view.OpStatus)
		cmd := tea.Batch(m.toast("Status updated!", view.SeveritySuccess), m.refresh())
		return m, cmd
	case statusFailedMsg:
		m.engine.ClearPending(msg.id, view.OpStatus)
		cmd := m.toast("Failed to update status", view.SeverityError)
		return m, cmd
	case deleteDoneMsg:
		m.engine.ClearPending(msg.id, view.OpDelete)
		cmd := tea.Batch(m.toast("Task deleted!", view.SeveritySuccess), m.refresh())
		return m, cmd
	case deleteFailedMsg:
		m.engine.ClearPending(msg.id, view.OpDelete)
		cmd := m.toast("Failed to delete task", view.SeverityError)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeForm {
		return m.handleFormKey(msg)
	}
	if m.mode == modeSearch {
		return m.handleSearchKey(msg)
	}
	if m.confirmDel {
		return m.handleConfirmKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f, submit, cancel, cmd := m.form.update(msg)
	m.form = f
	if cancel {
		m.mode = modeList
		m.form = form{}
		return m, nil
	}
	if submit {
		return m.submitForm()
	}
	return m, cmd
}

// submitForm validates locally and then issues the create or update. The
// edit path takes the task's pending marker first; the add path is guarded
// by the form's own submit lock.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft, err := m.form.draft()
	if err == nil {
		err = view.ValidateDraft(draft)
	}
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}
	m.form.errMsg = ""

	if m.form.isEdit() {
		id := m.form.editing.ID
		if !m.engine.MarkPending(id, view.OpEdit) {
			return m, nil
		}
		m.form.submitting = true
		return m, editTaskCmd(m.repo, id, draft)
	}
	m.form.submitting = true
	return m, createTaskCmd(m.repo, draft)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Cancel) || key.Matches(msg, m.keys.Confirm) {
		m.mode = modeList
		m.search.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.engine.SetSearch(m.search.Value())
	m.cursor = 0
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "n" || msg.String() == "N" || key.Matches(msg, m.keys.Cancel):
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case msg.String() == "y" || msg.String() == "Y" || key.Matches(msg, m.keys.Confirm):
		if m.pendingDel == nil {
			m.confirmDel = false
			return m, nil
		}
		id := m.pendingDel.ID
		m.confirmDel = false
		m.pendingDel = nil
		if !m.engine.MarkPending(id, view.OpDelete) {
			return m, nil
		}
		return m, deleteTaskCmd(m.repo, id)
	default:
		return m, nil
	}
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(snap.Tasks))
	case key.Matches(msg, m.keys.Add):
		m.mode = modeForm
		m.form = newForm(nil, m.keys)
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.rowTask(snap); ok && !m.engine.Pending(t.ID, view.OpEdit) {
			m.mode = modeForm
			m.form = newForm(&t, m.keys)
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.rowTask(snap); ok && !m.engine.Pending(t.ID, view.OpDelete) {
			m.confirmDel = true
			m.pendingDel = &t
		}
	case key.Matches(msg, m.keys.Status):
		if t, ok := m.rowTask(snap); ok && m.engine.MarkPending(t.ID, view.OpStatus) {
			draft := api.DraftOf(t)
			draft.Status = t.Status.Next()
			return m, changeStatusCmd(m.repo, t.ID, draft)
		}
	case key.Matches(msg, m.keys.Search):
		m.mode = modeSearch
		m.search.SetValue(snap.Search)
		m.search.Focus()
	case key.Matches(msg, m.keys.Filter):
		m.engine.SetFilter(snap.Filter.Next())
		m.cursor = 0
	case key.Matches(msg, m.keys.Sort):
		m.engine.SetSort(snap.Sort.Next())
		m.cursor = 0
	case key.Matches(msg, m.keys.Refresh):
		cmd := m.refresh()
		return m, cmd
	case key.Matches(msg, m.keys.PagePrev):
		m.engine.PrevPage()
		m.cursor = 0
	case key.Matches(msg, m.keys.PageNext):
		m.engine.NextPage()
		m.cursor = 0
	case key.Matches(msg, m.keys.Dismiss):
		m.engine.ClearNotification()
	}
	return m, nil
}

func (m Model) rowTask(snap view.Snapshot) (api.Task, bool) {
	if len(snap.Tasks) == 0 {
		return api.Task{}, false
	}
	return snap.Tasks[clampCursor(m.cursor, len(snap.Tasks))], true
}

// refresh reloads the whole collection. There is deliberately no in-flight
// guard at this level; only row operations are serialized.
func (m *Model) refresh() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spin.Tick, loadTasksCmd(m.repo))
}

func (m *Model) toast(text string, sev view.Severity) tea.Cmd {
	m.engine.Notify(text, sev)
	m.toastSeq++
	return toastExpireCmd(m.toastSeq)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Taskger"))
	b.WriteString("\n\n")

	if note, ok := m.engine.Notification(); ok {
		b.WriteString(toastStyle(note.Severity)(note.Text))
		b.WriteString("\n\n")
	}

	if m.mode == modeForm {
		b.WriteString(m.form.view())
		b.WriteString("\n")
		return b.String()
	}

	snap := m.engine.Snapshot()

	searchCell := snap.Search
	if m.mode == modeSearch {
		searchCell = m.search.View()
	} else if searchCell == "" {
		searchCell = "(none)"
	}
	b.WriteString(controlStyle.Render(fmt.Sprintf("Search: %s  •  Status: %s  •  Sort: %s",
		searchCell, snap.Filter.Label(), snap.Sort.Label())))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" Loading tasks...")
		b.WriteString("\n\n")
	}

	switch {
	case snap.Total == 0 && !m.loading:
		b.WriteString("No tasks yet. Press 'a' to add one.")
		b.WriteString("\n")
	case snap.Filtered == 0 && !m.loading:
		b.WriteString("No tasks match the current search and filter.")
		b.WriteString("\n")
	default:
		for i, t := range snap.Tasks {
			b.WriteString(m.renderRow(i, t))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Page %d of %d • %d of %d tasks", snap.Page, snap.PageCount, snap.Filtered, snap.Total))
	b.WriteString("\n")

	if m.confirmDel && m.pendingDel != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Delete %q? (y/n)", m.pendingDel.Title)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.renderHelp()))
	return b.String()
}

func (m Model) renderRow(i int, t api.Task) string {
	cursor := "  "
	if i == m.cursor && !m.confirmDel {
		cursor = "> "
	}

	badge := statusBadge(t.Status)
	line := fmt.Sprintf("%s%s %s", cursor, badge, t.Title)
	if t.DueDate != nil {
		line += "  (due " + *t.DueDate + ")"
	}
	if desc := api.DescriptionOrEmpty(t.Description); desc != "" {
		line += "  " + controlStyle.Render(snippet(desc, 32))
	}
	if m.engine.PendingAny(t.ID) {
		return pendingStyle.Render(line + "  …")
	}
	if i == m.cursor && !m.confirmDel {
		return selectedStyle.Render(line)
	}
	return line
}

func statusBadge(s api.Status) string {
	label := fmt.Sprintf("[%-11s]", s.Label())
	switch s {
	case api.StatusTodo:
		return badgeTodo.Render(label)
	case api.StatusInProgress:
		return badgeInProgress.Render(label)
	default:
		return badgeDone.Render(label)
	}
}

func snippet(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func (m Model) renderHelp() string {
	ks := []key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Add, m.keys.Edit, m.keys.Status,
		m.keys.Delete, m.keys.Search, m.keys.Filter, m.keys.Sort,
		m.keys.PagePrev, m.keys.PageNext, m.keys.Refresh, m.keys.Quit,
	}
	parts := make([]string, 0, len(ks))
	for _, k := range ks {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
