package storage

import (
	"aquad/internal/structures"
	"os"
	"path/filepath"
)

// StoreInterface is the durable key-value collaborator: one blob per
// well-known key, no further structure.
type StoreInterface interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// FileStore keeps each key in its own file under the persistence dir.
// Writes go through a temp file and rename so a crash never leaves a
// half-written blob behind.
type FileStore struct {
	dir string
}

func NewFileStore(conf *structures.Config) (StoreInterface, error) {
	if err := os.MkdirAll(conf.Persistence.Dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: conf.Persistence.Dir}, nil
}

func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.dir, key+".dat")
}

func (fs *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (fs *FileStore) Set(key string, value []byte) error {
	fileName := fs.path(key)
	tmpFile := fileName + ".tmp"

	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(value); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}
