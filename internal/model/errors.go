package model

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientArguments = errors.New("not enough arguments")
	ErrNotText               = errors.New("file is not valid UTF-8 text")
)

// FileAccessError is returned when the target file can't be fully read as text.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("error reading file %q: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
