// Package reader loads the whole input file into memory as text
package reader

import (
	"errors"
	"os"
	"unicode/utf8"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// ReadInput returns the full contents of fileName. Any failure is a *model.FileAccessError.
func ReadInput(fileName string) (string, error) {
	// проверяем открывается ли файл
	info, err := os.Stat(fileName)
	if err != nil {
		return "", &model.FileAccessError{Path: fileName, Err: err}
	}
	// проверяем не папка ли это
	if info.IsDir() {
		return "", &model.FileAccessError{Path: fileName, Err: errors.New("is a directory")}
	}

	raw, err := os.ReadFile(fileName)
	if err != nil {
		return "", &model.FileAccessError{Path: fileName, Err: err}
	}

	if !utf8.Valid(raw) {
		return "", &model.FileAccessError{Path: fileName, Err: model.ErrNotText}
	}

	return string(raw), nil
}
