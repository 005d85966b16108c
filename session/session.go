// Package session persists the auth token, the single durable key the
// storefront keeps between runs.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Store holds exactly one value: the session token. An empty string
// means signed out.
type Store interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileStore keeps the token in a plain file, the localStorage analog
// for a terminal client.
type FileStore struct {
	Path string
}

// DefaultPath places the token under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "navswara", "token"), nil
}

func (s *FileStore) Load() (string, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.Path, []byte(token), 0o600)
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	Token string
}

func (s *MemStore) Load() (string, error)   { return s.Token, nil }
func (s *MemStore) Save(token string) error { s.Token = token; return nil }
func (s *MemStore) Clear() error            { s.Token = ""; return nil }
