// Package view holds the task view-model: the authoritative task collection,
// the transient UI state around it, and the pure pipeline that derives the
// displayed page. It does no I/O; the UI layer feeds it server results and
// reads snapshots back.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"taskger/internal/api"
)

// PageSize is the fixed number of tasks per page.
const PageSize = 5

// Op names a per-task remote operation guarded by a pending marker.
type Op int

const (
	OpDelete Op = iota
	OpEdit
	OpStatus
)

// SortKey selects the comparator for the sort stage.
type SortKey int

const (
	SortDueAsc SortKey = iota
	SortDueDesc
	SortTitleAsc
	SortTitleDesc
)

func (k SortKey) Label() string {
	switch k {
	case SortDueAsc:
		return "Due ↑"
	case SortDueDesc:
		return "Due ↓"
	case SortTitleAsc:
		return "Title A-Z"
	case SortTitleDesc:
		return "Title Z-A"
	}
	return "?"
}

// Next cycles to the following sort key, wrapping around.
func (k SortKey) Next() SortKey {
	return (k + 1) % 4
}

// Filter is a status filter value: one of the statuses, or FilterAll.
type Filter string

const FilterAll Filter = "ALL"

func (f Filter) Matches(s api.Status) bool {
	return f == FilterAll || api.Status(f) == s
}

func (f Filter) Label() string {
	if f == FilterAll {
		return "All"
	}
	return api.Status(f).Label()
}

// Next cycles ALL → TODO → IN_PROGRESS → DONE → ALL.
func (f Filter) Next() Filter {
	if f == FilterAll {
		return Filter(api.StatusTodo)
	}
	next := api.Status(f).Next()
	if next == api.StatusTodo {
		return FilterAll
	}
	return Filter(next)
}

// Severity tags a notification for presentation only.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Note is the single-slot transient notification.
type Note struct {
	Text     string
	Severity Severity
}

type pendingKey struct {
	id int
	op Op
}

// Engine owns the task collection and all view state. Presentation reads
// Snapshot and dispatches commands; it never mutates state directly.
type Engine struct {
	tasks   []api.Task
	search  string
	filter  Filter
	sortKey SortKey
	page    int
	pending map[pendingKey]struct{}
	note    *Note
}

func NewEngine() *Engine {
	return &Engine{
		filter:  FilterAll,
		sortKey: SortDueAsc,
		page:    1,
		pending: make(map[pendingKey]struct{}),
	}
}

// Snapshot is the derived state the UI renders from.
type Snapshot struct {
	Tasks     []api.Task // the current page, post filter and sort
	Page      int
	PageCount int
	Total     int // unfiltered collection size
	Filtered  int
	Search    string
	Filter    Filter
	Sort      SortKey
}

func (e *Engine) Snapshot() Snapshot {
	visible := Apply(e.tasks, e.search, e.filter, e.sortKey)
	pages := PageCount(len(visible))
	page := clampPage(e.page, pages)
	return Snapshot{
		Tasks:     Page(visible, page),
		Page:      page,
		PageCount: pages,
		Total:     len(e.tasks),
		Filtered:  len(visible),
		Search:    e.search,
		Filter:    e.filter,
		Sort:      e.sortKey,
	}
}

// Task looks a task up by id in the authoritative collection.
func (e *Engine) Task(id int) (api.Task, bool) {
	for _, t := range e.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return api.Task{}, false
}

// SetTasks replaces the collection after a successful list refresh. The page
// resets to 1 when the total count changed, and is clamped otherwise.
func (e *Engine) SetTasks(tasks []api.Task) {
	changed := len(tasks) != len(e.tasks)
	e.tasks = tasks
	if changed {
		e.page = 1
		return
	}
	e.page = clampPage(e.page, PageCount(len(Apply(e.tasks, e.search, e.filter, e.sortKey))))
}

func (e *Engine) SetSearch(term string) {
	if term == e.search {
		return
	}
	e.search = term
	e.page = 1
}

func (e *Engine) SetFilter(f Filter) {
	if f == e.filter {
		return
	}
	e.filter = f
	e.page = 1
}

func (e *Engine) SetSort(k SortKey) {
	if k == e.sortKey {
		return
	}
	e.sortKey = k
	e.page = 1
}

func (e *Engine) NextPage() {
	pages := PageCount(len(Apply(e.tasks, e.search, e.filter, e.sortKey)))
	e.page = clampPage(e.page+1, pages)
}

func (e *Engine) PrevPage() {
	if e.page > 1 {
		e.page--
	}
}

// MarkPending records an in-flight (id, op) pair. It returns false when one
// is already outstanding, rejecting re-entry.
func (e *Engine) MarkPending(id int, op Op) bool {
	k := pendingKey{id: id, op: op}
	if _, ok := e.pending[k]; ok {
		return false
	}
	e.pending[k] = struct{}{}
	return true
}

func (e *Engine) ClearPending(id int, op Op) {
	delete(e.pending, pendingKey{id: id, op: op})
}

func (e *Engine) Pending(id int, op Op) bool {
	_, ok := e.pending[pendingKey{id: id, op: op}]
	return ok
}

// PendingAny reports whether any operation is in flight for the task.
func (e *Engine) PendingAny(id int) bool {
	for _, op := range []Op{OpDelete, OpEdit, OpStatus} {
		if e.Pending(id, op) {
			return true
		}
	}
	return false
}

// Notify replaces the notification slot; there is no queue.
func (e *Engine) Notify(text string, sev Severity) {
	e.note = &Note{Text: text, Severity: sev}
}

func (e *Engine) ClearNotification() {
	e.note = nil
}

func (e *Engine) Notification() (Note, bool) {
	if e.note == nil {
		return Note{}, false
	}
	return *e.note, true
}

var titleCollator = collate.New(language.Und)

// Apply runs the filter and sort stages. It never mutates its input; the
// sort is stable, so ties keep their filter-stage relative order.
func Apply(tasks []api.Task, search string, f Filter, key SortKey) []api.Task {
	term := strings.ToLower(search)
	out := make([]api.Task, 0, len(tasks))
	for _, t := range tasks {
		if !f.Matches(t.Status) {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(t.Title), term) &&
			!strings.Contains(strings.ToLower(api.DescriptionOrEmpty(t.Description)), term) {
			continue
		}
		out = append(out, t)
	}

	due := func(t api.Task) string {
		if t.DueDate == nil {
			return ""
		}
		return *t.DueDate
	}
	sort.SliceStable(out, func(i, j int) bool {
		switch key {
		case SortDueAsc:
			return due(out[i]) < due(out[j])
		case SortDueDesc:
			return due(out[j]) < due(out[i])
		case SortTitleAsc:
			return titleCollator.CompareString(out[i].Title, out[j].Title) < 0
		default:
			return titleCollator.CompareString(out[j].Title, out[i].Title) < 0
		}
	})
	return out
}

// Page slices out the 1-based page from an already filtered and sorted list.
func Page(tasks []api.Task, page int) []api.Task {
	start := (page - 1) * PageSize
	if start >= len(tasks) || start < 0 {
		return nil
	}
	end := start + PageSize
	if end > len(tasks) {
		end = len(tasks)
	}
	return tasks[start:end]
}

// PageCount is ceil(n / PageSize), never less than 1.
func PageCount(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

func clampPage(p, pages int) int {
	if pages < 1 {
		pages = 1
	}
	if p < 1 {
		return 1
	}
	if p > pages {
		return pages
	}
	return p
}
