package localstore

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process Store. The zero value is ready to use.
type Memory struct {
	mu     sync.Mutex
	data   map[string][]byte
	leases map[string]*memLease
}

type memLease struct {
	expires time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string][]byte)
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *Memory) Lock(_ context.Context, name string, ttl time.Duration) (func(context.Context) error, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if l, ok := m.leases[name]; ok && time.Now().Before(l.expires) {
		return nil, ErrLocked
	}
	if m.leases == nil {
		m.leases = make(map[string]*memLease)
	}
	l := &memLease{expires: time.Now().Add(ttl)}
	m.leases[name] = l
	return func(context.Context) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.leases[name] == l {
			delete(m.leases, name)
		}
		return nil
	}, nil
}
