package editor

import (
	"fmt"
	"sync"

	"github.com/yogachanthat/site/internal/model"
)

// Store keeps live editor sessions.
type Store interface {
	Create() Session
	CreateFromPost(p *model.Post) Session
	Get(id SessionID) (Session, error)
	Put(s Session) error
	Delete(id SessionID) error
}

// MemoryStore holds sessions in process memory. Sessions do not
// survive a restart; there is no autosave.
type MemoryStore struct {
	sessions sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Create() Session {
	s := NewSession()
	m.sessions.Store(s.ID, s)
	return s
}

func (m *MemoryStore) CreateFromPost(p *model.Post) Session {
	s := SessionFromPost(p)
	m.sessions.Store(s.ID, s)
	return s
}

func (m *MemoryStore) Get(id SessionID) (Session, error) {
	if s, ok := m.sessions.Load(id); ok {
		return s.(Session), nil
	}
	return Session{}, fmt.Errorf("editor session not found: %s", id)
}

func (m *MemoryStore) Put(s Session) error {
	if _, ok := m.sessions.Load(s.ID); !ok {
		return fmt.Errorf("editor session not found: %s", s.ID)
	}
	m.sessions.Store(s.ID, s)
	return nil
}

func (m *MemoryStore) Delete(id SessionID) error {
	m.sessions.Delete(id)
	return nil
}
