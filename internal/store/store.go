// Package store keeps per-client state (session, wardrobe, saved outfits,
// quiz result) in a key/value backend. Each client gets its own namespace,
// mirroring one browser's local storage.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// KV is implemented by cache.Store (Redis), repository.Repository (Postgres)
// and Memory. Get returns nil, nil for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

const (
	keyCurrentUser = "stylesense_user"
	keyUsers       = "stylesense_users"
	keyWardrobe    = "stylesense_wardrobe"
	keySaved       = "stylesense_saved_outfits"
	keyQuiz        = "stylesense_quiz_result"
)

var clientIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func ValidClientID(id string) bool {
	return clientIDPattern.MatchString(id)
}

type Store struct {
	kv KV
}

func New(kv KV) *Store {
	return &Store{kv: kv}
}

// Client returns the namespace of one client. The id must satisfy ValidClientID.
func (s *Store) Client(id string) *Namespace {
	return &Namespace{kv: s.kv, prefix: "client:" + id + ":"}
}

type Namespace struct {
	kv     KV
	prefix string
}

func (n *Namespace) getJSON(ctx context.Context, key string, v any) (bool, error) {
	raw, err := n.kv.Get(ctx, n.prefix+key)
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (n *Namespace) putJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return n.kv.Set(ctx, n.prefix+key, raw)
}

func (n *Namespace) delete(ctx context.Context, key string) error {
	return n.kv.Delete(ctx, n.prefix+key)
}

// Reset deletes everything stored for the client.
func (n *Namespace) Reset(ctx context.Context) error {
	return n.kv.DeletePrefix(ctx, n.prefix)
}

// Memory is an in-process KV used when no external backend is configured.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	m.mu.Lock()
	m.data[key] = v
	m.mu.Unlock()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) DeletePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	m.mu.Unlock()
	return nil
}
