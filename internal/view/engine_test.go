package view

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskger/internal/api"
)

func task(id int, title string, status api.Status, due string) api.Task {
	t := api.Task{ID: id, Title: title, Status: status}
	if due != "" {
		t.DueDate = lo.ToPtr(due)
	}
	return t
}

func titles(tasks []api.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestPageCount(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 4: 1, 5: 1, 6: 2, 10: 2, 11: 3}
	for n, want := range cases {
		assert.Equal(t, want, PageCount(n), "n=%d", n)
	}
}

func TestApplyFiltersByStatusAndSearch(t *testing.T) {
	tasks := []api.Task{
		task(1, "Buy milk", api.StatusTodo, ""),
		task(2, "Walk dog", api.StatusDone, ""),
		{ID: 3, Title: "Chores", Status: api.StatusTodo, Description: lo.ToPtr("buy bread and MILK")},
	}

	got := Apply(tasks, "", Filter(api.StatusTodo), SortDueAsc)
	assert.Equal(t, []string{"Buy milk", "Chores"}, titles(got))

	// case-insensitive, matches title or description
	got = Apply(tasks, "milk", FilterAll, SortDueAsc)
	assert.Equal(t, []string{"Buy milk", "Chores"}, titles(got))

	got = Apply(tasks, "MILK", Filter(api.StatusDone), SortDueAsc)
	assert.Empty(t, got)
}

func TestApplyIsIdempotent(t *testing.T) {
	tasks := []api.Task{
		task(1, "b", api.StatusTodo, "2026-01-02"),
		task(2, "a", api.StatusTodo, "2026-01-01"),
		task(3, "c", api.StatusDone, ""),
	}
	first := Apply(tasks, "", FilterAll, SortDueAsc)
	second := Apply(first, "", FilterAll, SortDueAsc)
	assert.Equal(t, first, second)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	tasks := []api.Task{
		task(1, "b", api.StatusTodo, "2026-01-02"),
		task(2, "a", api.StatusTodo, "2026-01-01"),
	}
	Apply(tasks, "", FilterAll, SortDueAsc)
	assert.Equal(t, []string{"b", "a"}, titles(tasks))
}

func TestSortDueDateTreatsMissingAsEmpty(t *testing.T) {
	tasks := []api.Task{
		task(1, "later", api.StatusTodo, "2026-06-01"),
		task(2, "none", api.StatusTodo, ""),
		task(3, "soon", api.StatusTodo, "2026-01-01"),
	}

	asc := Apply(tasks, "", FilterAll, SortDueAsc)
	assert.Equal(t, []string{"none", "soon", "later"}, titles(asc))

	desc := Apply(tasks, "", FilterAll, SortDueDesc)
	assert.Equal(t, []string{"later", "soon", "none"}, titles(desc))
}

func TestSortIsStableOnTies(t *testing.T) {
	tasks := []api.Task{
		task(1, "first", api.StatusTodo, "2026-01-01"),
		task(2, "second", api.StatusTodo, "2026-01-01"),
		task(3, "third", api.StatusTodo, "2026-01-01"),
	}
	got := Apply(tasks, "", FilterAll, SortDueAsc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(got))

	got = Apply(tasks, "", FilterAll, SortDueDesc)
	assert.Equal(t, []string{"first", "second", "third"}, titles(got))
}

func TestSortByTitle(t *testing.T) {
	tasks := []api.Task{
		task(1, "banana", api.StatusTodo, ""),
		task(2, "Apple", api.StatusTodo, ""),
		task(3, "cherry", api.StatusTodo, ""),
	}
	asc := Apply(tasks, "", FilterAll, SortTitleAsc)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, titles(asc))

	desc := Apply(tasks, "", FilterAll, SortTitleDesc)
	assert.Equal(t, []string{"cherry", "banana", "Apple"}, titles(desc))
}

func TestSnapshotPaginates(t *testing.T) {
	e := NewEngine()
	var tasks []api.Task
	for i := 1; i <= 7; i++ {
		tasks = append(tasks, task(i, fmt.Sprintf("t%02d", i), api.StatusTodo, ""))
	}
	e.SetTasks(tasks)

	snap := e.Snapshot()
	require.Equal(t, 1, snap.Page)
	require.Equal(t, 2, snap.PageCount)
	assert.Len(t, snap.Tasks, PageSize)

	e.NextPage()
	snap = e.Snapshot()
	assert.Equal(t, 2, snap.Page)
	assert.Len(t, snap.Tasks, 2)

	// already on the last page
	e.NextPage()
	assert.Equal(t, 2, e.Snapshot().Page)

	e.PrevPage()
	assert.Equal(t, 1, e.Snapshot().Page)
	e.PrevPage()
	assert.Equal(t, 1, e.Snapshot().Page)
}

func TestPageResetsOnInputChanges(t *testing.T) {
	e := NewEngine()
	var tasks []api.Task
	for i := 1; i <= 12; i++ {
		tasks = append(tasks, task(i, fmt.Sprintf("t%02d", i), api.StatusTodo, ""))
	}
	e.SetTasks(tasks)

	e.NextPage()
	require.Equal(t, 2, e.Snapshot().Page)
	e.SetSearch("t0")
	assert.Equal(t, 1, e.Snapshot().Page)

	e.SetSearch("")
	e.NextPage()
	e.SetFilter(Filter(api.StatusTodo))
	assert.Equal(t, 1, e.Snapshot().Page)

	e.NextPage()
	e.SetSort(SortTitleDesc)
	assert.Equal(t, 1, e.Snapshot().Page)

	// unchanged values keep the page
	e.NextPage()
	e.SetSort(SortTitleDesc)
	e.SetFilter(Filter(api.StatusTodo))
	e.SetSearch("")
	assert.Equal(t, 2, e.Snapshot().Page)
}

func TestPageResetsWhenTotalCountChanges(t *testing.T) {
	e := NewEngine()
	var tasks []api.Task
	for i := 1; i <= 11; i++ {
		tasks = append(tasks, task(i, fmt.Sprintf("t%02d", i), api.StatusTodo, ""))
	}
	e.SetTasks(tasks)
	e.NextPage()
	e.NextPage()
	require.Equal(t, 3, e.Snapshot().Page)

	e.SetTasks(tasks[:10])
	assert.Equal(t, 1, e.Snapshot().Page)
}

func TestPageClampsWhenFilteredCountShrinks(t *testing.T) {
	e := NewEngine()
	var tasks []api.Task
	for i := 1; i <= 6; i++ {
		tasks = append(tasks, task(i, fmt.Sprintf("t%02d", i), api.StatusTodo, ""))
	}
	e.SetTasks(tasks)
	e.SetFilter(Filter(api.StatusTodo))
	e.NextPage()
	require.Equal(t, 2, e.Snapshot().Page)

	// same total, but one task no longer matches the filter
	moved := make([]api.Task, len(tasks))
	copy(moved, tasks)
	moved[5].Status = api.StatusDone
	e.SetTasks(moved)
	snap := e.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, 1, snap.PageCount)
}

func TestPendingMarkersRejectReentry(t *testing.T) {
	e := NewEngine()
	require.True(t, e.MarkPending(7, OpDelete))
	assert.False(t, e.MarkPending(7, OpDelete))

	// other ops and other ids stay independent
	assert.True(t, e.MarkPending(7, OpStatus))
	assert.True(t, e.MarkPending(8, OpDelete))
	assert.True(t, e.PendingAny(7))

	e.ClearPending(7, OpDelete)
	assert.False(t, e.Pending(7, OpDelete))
	assert.True(t, e.Pending(7, OpStatus))
}

func TestNotificationSlotReplaces(t *testing.T) {
	e := NewEngine()
	_, ok := e.Notification()
	require.False(t, ok)

	e.Notify("first", SeverityInfo)
	e.Notify("second", SeverityError)
	note, ok := e.Notification()
	require.True(t, ok)
	assert.Equal(t, "second", note.Text)
	assert.Equal(t, SeverityError, note.Severity)

	e.ClearNotification()
	_, ok = e.Notification()
	assert.False(t, ok)
}

func TestFilterAndSortCycles(t *testing.T) {
	f := FilterAll
	seen := []Filter{}
	for i := 0; i < 4; i++ {
		f = f.Next()
		seen = append(seen, f)
	}
	assert.Equal(t, []Filter{
		Filter(api.StatusTodo), Filter(api.StatusInProgress), Filter(api.StatusDone), FilterAll,
	}, seen)

	k := SortDueAsc
	for i := 0; i < 4; i++ {
		k = k.Next()
	}
	assert.Equal(t, SortDueAsc, k)
}

// The end-to-end flow of the listing surface: grow the collection past one
// page, then watch a narrowing search override the page position.
func TestListingScenario(t *testing.T) {
	e := NewEngine()
	e.SetTasks([]api.Task{task(1, "Buy milk", api.StatusTodo, "")})
	snap := e.Snapshot()
	require.Equal(t, 1, snap.Total)
	require.Equal(t, 1, snap.Page)
	require.Equal(t, 1, snap.PageCount)

	tasks := []api.Task{
		task(1, "Buy milk", api.StatusTodo, ""),
		task(2, "Buy bread", api.StatusTodo, ""),
	}
	for i := 3; i <= 6; i++ {
		tasks = append(tasks, task(i, fmt.Sprintf("Errand %d", i), api.StatusTodo, ""))
	}
	e.SetTasks(tasks)
	snap = e.Snapshot()
	require.Equal(t, 6, snap.Total)
	require.Equal(t, 2, snap.PageCount)

	e.NextPage()
	require.Equal(t, 2, e.Snapshot().Page)

	// only two titles contain "buy"; the prior page position is irrelevant
	e.SetSearch("buy")
	snap = e.Snapshot()
	assert.Equal(t, 1, snap.Page)
	assert.Equal(t, 1, snap.PageCount)
	assert.Equal(t, 2, snap.Filtered)
	assert.Equal(t, []string{"Buy milk", "Buy bread"}, titles(snap.Tasks))
}
