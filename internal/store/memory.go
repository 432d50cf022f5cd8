package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Memory implements Document with an in-process map. Records are stored as
// JSON so reads return copies, matching the remote store's semantics.
type Memory struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string]json.RawMessage)}
}

func (s *Memory) GenerateID(_ context.Context, _ string) (string, error) {
	return uuid.NewString(), nil
}

func (s *Memory) Set(_ context.Context, path string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Op: "set", Path: path, Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = raw
	return nil
}

func (s *Memory) Get(_ context.Context, path string, out any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.data[path]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, &StorageError{Op: "get", Path: path, Err: err}
	}
	return true, nil
}

func (s *Memory) Update(_ context.Context, path string, partial map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]any)
	if raw, ok := s.data[path]; ok {
		if err := json.Unmarshal(raw, &merged); err != nil {
			return &StorageError{Op: "update", Path: path, Err: err}
		}
	}
	for k, v := range partial {
		merged[k] = v
	}
	raw, err := json.Marshal(merged)
	if err != nil {
		return &StorageError{Op: "update", Path: path, Err: err}
	}
	s.data[path] = raw
	return nil
}

func (s *Memory) GetAll(_ context.Context, collection string) (map[string]json.RawMessage, error) {
	prefix := collection + "/"
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]json.RawMessage)
	for path, raw := range s.data {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		id := strings.TrimPrefix(path, prefix)
		if strings.Contains(id, "/") {
			continue
		}
		out[id] = raw
	}
	return out, nil
}
