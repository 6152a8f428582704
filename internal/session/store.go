// Package session holds the authenticated identity for the lifetime
// of the client.
package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/arenacode/arenactl/internal/api"
)

// Store keeps the current session. The zero value is a logged-out
// store ready for use.
type Store struct {
	mutex   sync.RWMutex
	session *api.Session
}

func NewStore() *Store {
	return &Store{}
}

// Login replaces the current session.
func (s *Store) Login(session api.Session) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.session = &session
}

// Logout destroys the current session.
func (s *Store) Logout() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.session = nil
}

// Current returns the current session, if any.
func (s *Store) Current() (api.Session, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	if s.session == nil {
		return api.Session{}, false
	}
	return *s.session, true
}

func (s *Store) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// LoadFile restores a session saved by SaveFile. A missing file is
// not an error: the store simply stays logged out.
func (s *Store) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	var session api.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return err
	}
	s.Login(session)
	return nil
}

// SaveFile persists the current session, or removes the file when
// the store is logged out.
func (s *Store) SaveFile(path string) error {
	session, ok := s.Current()
	if !ok {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
