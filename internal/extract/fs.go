package extract

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// FS is the filesystem an [Extractor] reads documents from and writes
// sources to.
type FS interface {
	fs.FS
	WriteFile(name string, data []byte, perm fs.FileMode) error
}

type osFS struct{}

// OS returns an [FS] backed by the host filesystem. Names are used as given,
// relative to the working directory or absolute.
func OS() FS { //nolint:ireturn
	return osFS{}
}

func (osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func (osFS) ReadFile(name string) ([]byte, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	return io.ReadAll(file)
}

func (osFS) WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	file, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	_, err = file.Write(data)

	return err
}
