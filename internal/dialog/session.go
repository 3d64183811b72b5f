package dialog

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// Result is the terminal value of a dialog session. Model carries
// caller-defined data only when DidOkOrSubmit is true; on dismissal it is
// the zero value and callers must not read meaning into it.
type Result[M any] struct {
	DidOkOrSubmit bool
	Model         M
}

// Props is the contract handed to a dialog body factory. Submit and Close
// resolve the session; SetOptions mutates the dialog's presentation while
// it is still open. Extra carries caller-supplied props verbatim.
type Props[M any] struct {
	SetOptions func(OptionsPatch)
	Submit     func(model M)
	Close      func()
	Extra      map[string]any
}

// BodyFactory builds the dialog body. The returned tea.Model doubles as the
// host's imperative handle to the mounted body. An error is fatal to the
// open call: the session never reaches the user.
type BodyFactory[M any] func(props Props[M]) (tea.Model, error)

// Session is one open dialog instance. Sessions are created by Open,
// resolve exactly once, and are never reused.
type Session[M any] struct {
	id   uuid.UUID
	body tea.Model

	mu     sync.Mutex
	opts   Options
	result Result[M]
	err    error

	once sync.Once
	done chan struct{}
}

// ID returns the session's unique identifier.
func (s *Session[M]) ID() uuid.UUID {
	return s.id
}

// Body returns the mounted dialog body for imperative access.
func (s *Session[M]) Body() tea.Model {
	return s.body
}

// Options returns the dialog's current presentation options.
func (s *Session[M]) Options() Options {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts
}

// SetOptions applies a partial options update. After the session has
// resolved this is a no-op: there is nothing left on screen to restyle.
func (s *Session[M]) SetOptions(patch OptionsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolvedLocked() {
		return
	}
	s.opts = patch.apply(s.opts)
}

// Submit resolves the session as confirmed, carrying model to the caller.
// Only the first resolution counts.
func (s *Session[M]) Submit(model M) {
	s.resolve(Result[M]{DidOkOrSubmit: true, Model: model}, nil)
}

// Close resolves the session as dismissed.
func (s *Session[M]) Close() {
	s.resolve(Result[M]{DidOkOrSubmit: false}, nil)
}

// Done is closed once the session has resolved.
func (s *Session[M]) Done() <-chan struct{} {
	return s.done
}

// Await blocks until the session resolves or ctx is cancelled.
func (s *Session[M]) Await(ctx context.Context) (Result[M], error) {
	select {
	case <-s.done:
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.result, s.err
	case <-ctx.Done():
		var zero Result[M]
		return zero, ctx.Err()
	}
}

// resolve records the terminal state exactly once.
func (s *Session[M]) resolve(result Result[M], err error) {
	s.once.Do(func() {
		s.mu.Lock()
		s.result = result
		s.err = err
		s.mu.Unlock()
		close(s.done)
	})
}

// resolvedLocked reports whether the session has resolved. Callers hold s.mu.
func (s *Session[M]) resolvedLocked() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}
