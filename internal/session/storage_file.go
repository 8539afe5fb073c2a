package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStorage keeps the session keys in a single JSON file under the
// state directory. This is the default backend: client-local durable
// state with no server to run.
type FileStorage struct {
	path string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStorage{path: filepath.Join(dir, "session.json")}, nil
}

func (f *FileStorage) load() (map[string]string, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	kv := map[string]string{}
	if err := json.Unmarshal(raw, &kv); err != nil {
		// A corrupt file behaves like an empty one; the next write
		// replaces it.
		return map[string]string{}, nil
	}
	return kv, nil
}

func (f *FileStorage) save(kv map[string]string) error {
	raw, err := json.Marshal(kv)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o600)
}

func (f *FileStorage) Get(key string) (string, error) {
	kv, err := f.load()
	if err != nil {
		return "", err
	}
	return kv[key], nil
}

func (f *FileStorage) Set(key, value string) error {
	kv, err := f.load()
	if err != nil {
		return err
	}
	kv[key] = value
	return f.save(kv)
}

func (f *FileStorage) Delete(key string) error {
	kv, err := f.load()
	if err != nil {
		return err
	}
	delete(kv, key)
	return f.save(kv)
}
