package marker

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileStore treats the existence of a file as the marker. Relative paths
// resolve against the process working directory.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Initialized(context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking marker %s: %w", s.path, err)
}

func (s *FileStore) MarkInitialized(context.Context) error {
	if err := os.WriteFile(s.path, []byte("sent\n"), 0o644); err != nil {
		return fmt.Errorf("writing marker %s: %w", s.path, err)
	}
	return nil
}
