package store

import (
	"bytes"
	"context"
	"encoding/json"

	"firebase.google.com/go/v4/db"
)

var nullJSON = []byte("null")

// Realtime implements Document on top of Firebase Realtime Database.
type Realtime struct {
	client *db.Client
}

func NewRealtime(client *db.Client) *Realtime {
	return &Realtime{client: client}
}

func (s *Realtime) GenerateID(ctx context.Context, collection string) (string, error) {
	ref, err := s.client.NewRef(collection).Push(ctx, nil)
	if err != nil {
		return "", &StorageError{Op: "generate_id", Path: collection, Err: err}
	}
	return ref.Key, nil
}

func (s *Realtime) Set(ctx context.Context, path string, value any) error {
	if err := s.client.NewRef(path).Set(ctx, value); err != nil {
		return &StorageError{Op: "set", Path: path, Err: err}
	}
	return nil
}

func (s *Realtime) Get(ctx context.Context, path string, out any) (bool, error) {
	var raw json.RawMessage
	if err := s.client.NewRef(path).Get(ctx, &raw); err != nil {
		return false, &StorageError{Op: "get", Path: path, Err: err}
	}
	if len(raw) == 0 || bytes.Equal(raw, nullJSON) {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, &StorageError{Op: "get", Path: path, Err: err}
	}
	return true, nil
}

func (s *Realtime) Update(ctx context.Context, path string, partial map[string]any) error {
	if err := s.client.NewRef(path).Update(ctx, partial); err != nil {
		return &StorageError{Op: "update", Path: path, Err: err}
	}
	return nil
}

func (s *Realtime) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := s.client.NewRef(collection).Get(ctx, &raw); err != nil {
		return nil, &StorageError{Op: "get_all", Path: collection, Err: err}
	}
	return raw, nil
}
