package dialog

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/vk/modhost/internal/ctxlog"
)

// openEntry is the broker's type-erased view of a session on the stack.
type openEntry interface {
	ID() uuid.UUID
	Done() <-chan struct{}
}

// Broker tracks open dialog sessions. The host policy is explicit: dialogs
// stack in open order with no mutual exclusion, and a session leaves the
// stack when it resolves.
type Broker struct {
	mu    sync.Mutex
	stack []openEntry
}

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{}
}

// Open creates a dialog session and mounts its body. The factory runs
// immediately; a factory error or panic is fatal to the caller and no
// session is left behind. opts may be built with WithTitle for the bare
// title form.
func Open[M any](ctx context.Context, b *Broker, opts Options, factory BodyFactory[M], extra map[string]any) (s *Session[M], err error) {
	logger := ctxlog.FromContext(ctx)

	s = &Session[M]{
		id:   uuid.New(),
		opts: opts,
		done: make(chan struct{}),
	}

	props := Props[M]{
		SetOptions: s.SetOptions,
		Submit:     s.Submit,
		Close:      s.Close,
		Extra:      extra,
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Dialog body factory panicked.", "dialog_id", s.id, "panic", r)
			s = nil
			err = fmt.Errorf("dialog body factory panicked: %v", r)
		}
	}()

	body, err := factory(props)
	if err != nil {
		logger.Error("Dialog body factory failed.", "dialog_id", s.id, "error", err)
		return nil, fmt.Errorf("build dialog body: %w", err)
	}
	s.body = body

	b.push(s)
	logger.Debug("Dialog opened.", "dialog_id", s.id, "title", opts.Title, "depth", b.Depth())

	// Prune the stack once the session resolves, whichever way it ends.
	go func() {
		<-s.Done()
		b.remove(s.ID())
	}()

	return s, nil
}

// Depth returns the number of currently open sessions.
func (b *Broker) Depth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stack)
}

// OpenIDs returns the ids of open sessions, bottom of the stack first.
func (b *Broker) OpenIDs() []uuid.UUID {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]uuid.UUID, len(b.stack))
	for i, e := range b.stack {
		ids[i] = e.ID()
	}
	return ids
}

func (b *Broker) push(e openEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stack = append(b.stack, e)
}

func (b *Broker) remove(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, e := range b.stack {
		if e.ID() == id {
			b.stack = append(b.stack[:i], b.stack[i+1:]...)
			return
		}
	}
}
