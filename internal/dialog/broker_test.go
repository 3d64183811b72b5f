package dialog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modhost/internal/ctxlog"
)

type bodyModel struct{ label string }

func (m bodyModel) Init() tea.Cmd { return nil }

func (m bodyModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (m bodyModel) View() string { return m.label }

type confirmModel struct{ X int }

func testCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func openPlain[M any](t *testing.T, b *Broker, opts Options) (*Session[M], Props[M]) {
	t.Helper()
	var captured Props[M]
	s, err := Open(testCtx(), b, opts, func(props Props[M]) (tea.Model, error) {
		captured = props
		return bodyModel{label: "body"}, nil
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, s)
	return s, captured
}

func TestOpenAndSubmitResolvesOnce(t *testing.T) {
	b := NewBroker()
	s, props := openPlain[confirmModel](t, b, WithTitle("Confirm"))

	props.Submit(confirmModel{X: 1})
	// A second resolution of either kind must not change the outcome.
	props.Close()
	props.Submit(confirmModel{X: 99})

	res, err := s.Await(testCtx())
	require.NoError(t, err)
	assert.True(t, res.DidOkOrSubmit)
	assert.Equal(t, confirmModel{X: 1}, res.Model)
}

func TestOpenAndCloseResolvesDismissed(t *testing.T) {
	b := NewBroker()
	s, props := openPlain[confirmModel](t, b, WithTitle("Confirm"))

	props.Close()

	res, err := s.Await(testCtx())
	require.NoError(t, err)
	assert.False(t, res.DidOkOrSubmit)
	assert.Zero(t, res.Model, "model is undefined on dismissal")
}

func TestSetOptionsBeforeResolve(t *testing.T) {
	b := NewBroker()
	s, props := openPlain[confirmModel](t, b, WithTitle("Upload"))

	label := "Upload all"
	props.SetOptions(OptionsPatch{ActionLabel: &label})

	opts := s.Options()
	assert.Equal(t, "Upload", opts.Title)
	assert.Equal(t, "Upload all", opts.ActionLabel)
}

func TestSetOptionsAfterResolveIsNoOp(t *testing.T) {
	b := NewBroker()
	s, props := openPlain[confirmModel](t, b, WithTitle("Upload"))

	props.Close()
	<-s.Done()

	title := "too late"
	props.SetOptions(OptionsPatch{Title: &title})
	assert.Equal(t, "Upload", s.Options().Title)
}

func TestFactoryErrorIsFatalToCaller(t *testing.T) {
	b := NewBroker()
	boom := errors.New("render failed")

	s, err := Open(testCtx(), b, WithTitle("x"), func(Props[confirmModel]) (tea.Model, error) {
		return nil, boom
	}, nil)
	require.ErrorIs(t, err, boom)
	assert.Nil(t, s)
	assert.Equal(t, 0, b.Depth(), "failed open must not leave a stacked session")
}

func TestFactoryPanicIsFatalToCaller(t *testing.T) {
	b := NewBroker()

	s, err := Open(testCtx(), b, WithTitle("x"), func(Props[confirmModel]) (tea.Model, error) {
		panic("template exploded")
	}, nil)
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Equal(t, 0, b.Depth())
}

func TestExtraPropsArePassedThrough(t *testing.T) {
	b := NewBroker()

	var got map[string]any
	_, err := Open(testCtx(), b, WithTitle("x"), func(props Props[confirmModel]) (tea.Model, error) {
		got = props.Extra
		return bodyModel{}, nil
	}, map[string]any{"roomId": "!a:chat.local"})
	require.NoError(t, err)
	assert.Equal(t, "!a:chat.local", got["roomId"])
}

func TestSessionsStackAndPrune(t *testing.T) {
	b := NewBroker()

	s1, _ := openPlain[confirmModel](t, b, WithTitle("one"))
	s2, props2 := openPlain[confirmModel](t, b, WithTitle("two"))

	ids := b.OpenIDs()
	require.Len(t, ids, 2)
	assert.Equal(t, s1.ID(), ids[0])
	assert.Equal(t, s2.ID(), ids[1])

	props2.Close()
	<-s2.Done()

	// Pruning happens on the session's own goroutine; give it a moment.
	require.Eventually(t, func() bool { return b.Depth() == 1 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, ids[:1], b.OpenIDs())
}

func TestAwaitHonoursContext(t *testing.T) {
	b := NewBroker()
	s, _ := openPlain[confirmModel](t, b, WithTitle("never resolves"))

	ctx, cancel := context.WithCancel(testCtx())
	cancel()

	_, err := s.Await(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
