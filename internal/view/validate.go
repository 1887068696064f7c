package view

import (
	"strings"

	"github.com/cockroachdb/errors"

	"taskger/internal/api"
)

const (
	maxTitleLen       = 100
	maxDescriptionLen = 500
)

// ValidateDraft checks a draft before any network call. The first violated
// rule wins, and the error text is shown to the user verbatim.
func ValidateDraft(d api.Draft) error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("Title is required.")
	}
	if len([]rune(d.Title)) > maxTitleLen {
		return errors.New("Title must be at most 100 characters.")
	}
	if d.Description != nil && len([]rune(*d.Description)) > maxDescriptionLen {
		return errors.New("Description must be at most 500 characters.")
	}
	return nil
}
