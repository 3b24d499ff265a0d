// Package filestore provides a file-backed storage.Repo. All keys live in a
// single JSON document inside the configured data folder, rewritten on every
// mutation. It is the default backend and plays the role browser local
// storage plays for the web client.
package filestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	interrors "github.com/spotilike/go-client/internal/errors"
	"github.com/spotilike/go-client/storage"
)

const storageFileName = "spotilike.json"

var _ storage.Repo = (*FileStore)(nil)

type FileStore struct {
	path   string
	lock   sync.Mutex
	values map[string]string
}

// New opens (or creates) the storage file inside folder.
func New(folder string) (*FileStore, error) {
	if folder == "" {
		return nil, errors.New("[filestore.New] folder is required")
	}
	if err := os.MkdirAll(folder, 0o700); err != nil {
		return nil, errors.Wrap(err, "[filestore.New] create data folder")
	}

	fs := &FileStore{
		path:   filepath.Join(folder, storageFileName),
		values: make(map[string]string),
	}
	if err := fs.load(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) Get(key string) (string, bool, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	value, ok := fs.values[key]
	return value, ok, nil
}

func (fs *FileStore) Set(key, value string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.values[key] = value
	return fs.flush()
}

func (fs *FileStore) Delete(key string) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if _, ok := fs.values[key]; !ok {
		return nil
	}
	delete(fs.values, key)
	return fs.flush()
}

func (fs *FileStore) load() error {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "[filestore.load] read storage file")
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &fs.values); err != nil {
		return interrors.Wrapf(interrors.ErrCorruptRecord, "[filestore.load] %s", err)
	}
	return nil
}

func (fs *FileStore) flush() error {
	data, err := json.MarshalIndent(fs.values, "", "  ")
	if err != nil {
		return errors.Wrap(err, "[filestore.flush] marshal values")
	}
	if err := os.WriteFile(fs.path, data, 0o600); err != nil {
		return errors.Wrap(err, "[filestore.flush] write storage file")
	}
	return nil
}
