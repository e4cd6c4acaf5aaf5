package extract

import (
	"errors"
	"io/fs"
)

// FileAccessError reports a document that could not be read or a source file
// that could not be written.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func newFileAccessError(op, path string, err error) *FileAccessError {
	var perr *fs.PathError
	if errors.As(err, &perr) {
		err = perr.Err
	}

	return &FileAccessError{Op: op, Path: path, Err: err}
}

func (e *FileAccessError) Error() string {
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}
