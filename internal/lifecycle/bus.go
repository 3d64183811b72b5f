package lifecycle

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vk/modhost/internal/ctxlog"
)

// Event identifies a host lifecycle moment modules can subscribe to.
type Event int

const (
	// EventWrapper is broadcast when the host determines which component
	// wraps the client shell. Listeners receive a shared *WrapperOpts.
	EventWrapper Event = iota
)

// String returns the event's stable name for logging.
func (e Event) String() string {
	switch e {
	case EventWrapper:
		return "wrapper"
	default:
		return "unknown"
	}
}

// WrapperOpts is the mutable payload of EventWrapper. Every listener gets
// the same instance; any listener may set Wrapper and the last writer wins.
// A nil Wrapper after the broadcast means no module wraps the shell.
type WrapperOpts struct {
	Wrapper tea.Model
}

// WrapperListener receives the shared WrapperOpts during a broadcast.
type WrapperListener func(ctx context.Context, opts *WrapperOpts)

// Bus is the listener registry for lifecycle events. It is safe for
// concurrent registration, though broadcasts themselves are driven from the
// host's single UI timeline.
type Bus struct {
	mu       sync.Mutex
	wrappers []WrapperListener
}

// NewBus creates an empty lifecycle bus.
func NewBus() *Bus {
	return &Bus{}
}

// OnWrapper registers a listener for EventWrapper. Listeners fire in
// registration order and there is no way to unregister; modules live for
// the whole process.
func (b *Bus) OnWrapper(l WrapperListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.wrappers = append(b.wrappers, l)
}

// BroadcastWrapper invokes every EventWrapper listener in registration
// order, passing each the same opts instance. A listener panic is recovered
// and logged; remaining listeners still run. The caller reads opts.Wrapper
// after this returns.
func (b *Bus) BroadcastWrapper(ctx context.Context, opts *WrapperOpts) {
	b.mu.Lock()
	listeners := make([]WrapperListener, len(b.wrappers))
	copy(listeners, b.wrappers)
	b.mu.Unlock()

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Broadcasting lifecycle event.", "event", EventWrapper, "listeners", len(listeners))

	for i, l := range listeners {
		invokeWrapper(ctx, i, l, opts)
	}
}

// invokeWrapper runs one listener with panic isolation. Listener faults are
// non-fatal: report and continue.
func invokeWrapper(ctx context.Context, index int, l WrapperListener, opts *WrapperOpts) {
	defer func() {
		if r := recover(); r != nil {
			ctxlog.FromContext(ctx).Error("Lifecycle listener panicked; skipping it.",
				"event", EventWrapper, "listener_index", index, "panic", r)
		}
	}()
	l(ctx, opts)
}
