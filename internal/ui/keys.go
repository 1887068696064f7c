package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"taskger/internal/config"
)

type keyMap struct {
	Quit     key.Binding
	Up       key.Binding
	Down     key.Binding
	Add      key.Binding
	Edit     key.Binding
	Delete   key.Binding
	Status   key.Binding
	Search   key.Binding
	Filter   key.Binding
	Sort     key.Binding
	Refresh  key.Binding
	PagePrev key.Binding
	PageNext key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Dismiss  key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys(k.Quit, "ctrl+c"),
			key.WithHelp(k.Quit, "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys(k.Up, "up"),
			key.WithHelp(k.Up+"/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(k.Down, "down"),
			key.WithHelp(k.Down+"/↓", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys(k.Add),
			key.WithHelp(k.Add, "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys(k.Edit),
			key.WithHelp(k.Edit, "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys(k.Delete),
			key.WithHelp(k.Delete, "delete"),
		),
		Status: key.NewBinding(
			key.WithKeys(k.Status),
			key.WithHelp(k.Status, "status"),
		),
		Search: key.NewBinding(
			key.WithKeys(k.Search),
			key.WithHelp(k.Search, "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys(k.Filter),
			key.WithHelp(k.Filter, "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys(k.Sort),
			key.WithHelp(k.Sort, "sort"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(k.Refresh),
			key.WithHelp(k.Refresh, "refresh"),
		),
		PagePrev: key.NewBinding(
			key.WithKeys(k.PagePrev, "left"),
			key.WithHelp(k.PagePrev+"/←", "prev page"),
		),
		PageNext: key.NewBinding(
			key.WithKeys(k.PageNext, "right"),
			key.WithHelp(k.PageNext+"/→", "next page"),
		),
		Confirm: key.NewBinding(
			key.WithKeys(k.Confirm),
			key.WithHelp(k.Confirm, "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(k.Cancel),
			key.WithHelp(k.Cancel, "cancel"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys(k.DismissMsg),
			key.WithHelp(k.DismissMsg, "dismiss"),
		),
	}
}
