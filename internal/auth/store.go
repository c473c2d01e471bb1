package auth

import (
	"encoding/json"
	"os"
	"sync"
)

// Store is the browser-localStorage analogue the trust flag lives in.
type Store interface {
	Get(key string) string
	Set(key, value string) error
	Remove(key string) error
}

// FileStore persists key/value pairs as one JSON file, surviving restarts
// the way localStorage survives page loads.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]string
}

func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &fs.values); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) Get(key string) string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return fs.values[key]
}

func (fs *FileStore) Set(key, value string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.values[key] = value
	return fs.flush()
}

func (fs *FileStore) Remove(key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	delete(fs.values, key)
	return fs.flush()
}

func (fs *FileStore) flush() error {
	data, err := json.Marshal(fs.values)
	if err != nil {
		return err
	}
	return os.WriteFile(fs.path, data, 0o600)
}

// MemStore keeps the flag for the current session only.
type MemStore struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{values: map[string]string{}}
}

func (ms *MemStore) Get(key string) string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.values[key]
}

func (ms *MemStore) Set(key, value string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.values[key] = value
	return nil
}

func (ms *MemStore) Remove(key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	delete(ms.values, key)
	return nil
}
