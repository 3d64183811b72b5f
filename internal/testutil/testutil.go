// Package testutil holds shared helpers for the host's tests: a
// thread-safe log buffer and a configurable stub module.
package testutil

import (
	"bytes"
	"context"
	"sync"

	"github.com/vk/modhost/internal/modapi"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// StubModule is a test helper implementing modapi.Module. OnLoad runs when
// the host loads the module; LoadErr, when set, makes loading fail after
// OnLoad ran.
type StubModule struct {
	ModuleName string
	OnLoad     func(ctx context.Context, api *modapi.API)
	LoadErr    error

	mu     sync.Mutex
	loaded int
}

// Name implements modapi.Module.
func (m *StubModule) Name() string {
	if m.ModuleName == "" {
		return "stub"
	}
	return m.ModuleName
}

// Load implements modapi.Module.
func (m *StubModule) Load(ctx context.Context, api *modapi.API) error {
	m.mu.Lock()
	m.loaded++
	m.mu.Unlock()

	if m.OnLoad != nil {
		m.OnLoad(ctx, api)
	}
	return m.LoadErr
}

// LoadCount reports how many times the host loaded this module.
func (m *StubModule) LoadCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}
