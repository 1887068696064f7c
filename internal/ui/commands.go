package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"taskger/internal/api"
)

// Repository is the slice of the API client the UI depends on.
type Repository interface {
	List(ctx context.Context) ([]api.Task, error)
	Create(ctx context.Context, draft api.Draft) (api.Task, error)
	Update(ctx context.Context, id int, draft api.Draft) (api.Task, error)
	Delete(ctx context.Context, id int) error
}

// Remote-call results. Every mutation has a success and a failure twin; the
// failure ones carry the task id so the pending marker can be cleared.
type (
	tasksLoadedMsg  struct{ tasks []api.Task }
	loadFailedMsg   struct{ err error }
	createDoneMsg   struct{ task api.Task }
	createFailedMsg struct{ err error }
	editDoneMsg     struct{ id int }
	editFailedMsg   struct {
		id  int
		err error
	}
	statusDoneMsg   struct{ id int }
	statusFailedMsg struct {
		id  int
		err error
	}
	deleteDoneMsg   struct{ id int }
	deleteFailedMsg struct {
		id  int
		err error
	}
)

// Remote calls run as commands so the rest of the UI stays interactive.
// None of them takes a deadline beyond the client's transport timeout.

func loadTasksCmd(repo Repository) tea.Cmd {
	return func() tea.Msg {
		tasks, err := repo.List(context.Background())
		if err != nil {
			return loadFailedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks}
	}
}

func createTaskCmd(repo Repository, draft api.Draft) tea.Cmd {
	return func() tea.Msg {
		task, err := repo.Create(context.Background(), draft)
		if err != nil {
			return createFailedMsg{err: err}
		}
		return createDoneMsg{task: task}
	}
}

func editTaskCmd(repo Repository, id int, draft api.Draft) tea.Cmd {
	return func() tea.Msg {
		if _, err := repo.Update(context.Background(), id, draft); err != nil {
			return editFailedMsg{id: id, err: err}
		}
		return editDoneMsg{id: id}
	}
}

func changeStatusCmd(repo Repository, id int, draft api.Draft) tea.Cmd {
	return func() tea.Msg {
		if _, err := repo.Update(context.Background(), id, draft); err != nil {
			return statusFailedMsg{id: id, err: err}
		}
		return statusDoneMsg{id: id}
	}
}

func deleteTaskCmd(repo Repository, id int) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Delete(context.Background(), id); err != nil {
			return deleteFailedMsg{id: id, err: err}
		}
		return deleteDoneMsg{id: id}
	}
}
