package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"taskger/internal/view"
)

const toastDuration = 3 * time.Second

// toastExpiredMsg carries the sequence number of the toast whose timer
// fired; a stale number means a newer toast replaced it and wins.
type toastExpiredMsg struct{ seq int }

func toastExpireCmd(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func toastStyle(sev view.Severity) func(...string) string {
	switch sev {
	case view.SeveritySuccess:
		return toastSuccessStyle.Render
	case view.SeverityError:
		return toastErrorStyle.Render
	default:
		return toastInfoStyle.Render
	}
}
