package mediastore

import (
	"context"
	"sync"
)

// Memory guarda las fotos en un map (tests y dev sin disco).
type Memory struct {
	mu    sync.RWMutex
	byKey map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{byKey: make(map[string][]byte)}
}

func (s *Memory) Save(ctx context.Context, payload []byte, filename string) (string, error) {
	key := objectKey(filename)

	cp := make([]byte, len(payload))
	copy(cp, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byKey[key] = cp
	return key, nil
}

// Get expone el payload guardado (solo lo usan los tests).
func (s *Memory) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byKey[key]
	return p, ok
}

func (s *Memory) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byKey)
}
