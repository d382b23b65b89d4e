// Package dialog wraps the native file-save prompt.
package dialog

import (
	"errors"

	"github.com/ncruces/zenity"
)

// Save shows the OS save dialog. ok is false when the user cancelled.
type Save struct{}

func NewSave() *Save { return &Save{} }

func (*Save) SaveFile(title, suggestedName string) (path string, ok bool, err error) {
	path, err = zenity.SelectFileSave(
		zenity.Title(title),
		zenity.Filename(suggestedName),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{Name: "Word Document", Patterns: []string{"*.docx"}, CaseFold: true}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if path == "" {
		return "", false, nil
	}
	return path, true, nil
}
