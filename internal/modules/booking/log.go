// README: Agent log sinks: Redis for the live booking view, memory for tests.
package booking

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"yatra/internal/types"
)

// Entry is one committed line of the agent log.
type Entry struct {
	Timestamp string     `json:"timestamp"`
	Message   string     `json:"message"`
	Status    StepStatus `json:"status"`
}

// LogSink stores the visible agent log for a trip.
type LogSink interface {
	Append(ctx context.Context, tripID types.ID, e Entry) error
	Entries(ctx context.Context, tripID types.ID) ([]Entry, error)
	Reset(ctx context.Context, tripID types.ID) error
}

// MemorySink keeps logs in-process.
type MemorySink struct {
	mu   sync.RWMutex
	logs map[types.ID][]Entry
}

func NewMemorySink() *MemorySink {
	return &MemorySink{logs: make(map[types.ID][]Entry)}
}

func (s *MemorySink) Append(_ context.Context, tripID types.ID, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs[tripID] = append(s.logs[tripID], e)
	return nil
}

func (s *MemorySink) Entries(_ context.Context, tripID types.ID) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.logs[tripID]))
	copy(out, s.logs[tripID])
	return out, nil
}

func (s *MemorySink) Reset(_ context.Context, tripID types.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.logs, tripID)
	return nil
}

// RedisSink keeps logs in a Redis list with a TTL so the booking view can
// poll them; abandoned logs expire on their own.
type RedisSink struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSink(client *redis.Client, ttl time.Duration) *RedisSink {
	return &RedisSink{client: client, ttl: ttl}
}

func logKey(tripID types.ID) string {
	return "booking:log:" + string(tripID)
}

func (s *RedisSink) Append(ctx context.Context, tripID types.ID, e Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	key := logKey(tripID)
	if err := s.client.RPush(ctx, key, raw).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, s.ttl).Err()
}

func (s *RedisSink) Entries(ctx context.Context, tripID types.ID) ([]Entry, error) {
	raws, err := s.client.LRange(ctx, logKey(tripID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(raws))
	for _, raw := range raws {
		var e Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *RedisSink) Reset(ctx context.Context, tripID types.ID) error {
	return s.client.Del(ctx, logKey(tripID)).Err()
}
