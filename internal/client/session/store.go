package session

import "sync"

// Store persists the serialized session blob between restores within the
// store's own lifetime.
type Store interface {
	Load() ([]byte, error)
	Save(blob []byte) error
	Clear() error
}

// MemoryStore keeps the session blob in memory, so a session lives exactly as
// long as the process. This matches a browser tab's ephemeral storage: a new
// process starts logged out.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.blob == nil {
		return nil, nil
	}
	out := make([]byte, len(s.blob))
	copy(out, s.blob)
	return out, nil
}

func (s *MemoryStore) Save(blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = make([]byte, len(blob))
	copy(s.blob, blob)
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blob = nil
	return nil
}
