package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modhost/internal/ctxlog"
	"github.com/vk/modhost/internal/hcl_adapter"
	"github.com/vk/modhost/internal/lifecycle"
	"github.com/vk/modhost/internal/modapi"
	"github.com/vk/modhost/internal/testutil"
)

// wrapperStub is a minimal tea.Model standing in for a module's wrapper.
type wrapperStub struct{ name string }

func (w wrapperStub) Init() tea.Cmd { return nil }

func (w wrapperStub) Update(tea.Msg) (tea.Model, tea.Cmd) { return w, nil }

func (w wrapperStub) View() string { return w.name }

func testConfig() *Config {
	cfg, err := NewConfig(Config{ServerName: "chat.local", LogLevel: "debug"})
	if err != nil {
		panic(err)
	}
	return cfg
}

func TestNewConfigRequiresServerName(t *testing.T) {
	_, err := NewConfig(Config{})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ServerName: "chat.local"})
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language, "language defaults to en")
}

func TestLoadModulesIsolatesFailures(t *testing.T) {
	out := &testutil.SafeBuffer{}

	failing := &testutil.StubModule{ModuleName: "broken", LoadErr: errors.New("boom")}
	panicking := &testutil.StubModule{
		ModuleName: "panicky",
		OnLoad:     func(context.Context, *modapi.API) { panic("load exploded") },
	}
	healthy := &testutil.StubModule{ModuleName: "healthy"}

	a := NewApp(out, testConfig(), nil, failing, panicking, healthy)
	ctx := ctxlog.WithLogger(context.Background(), a.logger)

	loaded := a.LoadModules(ctx)

	assert.Equal(t, 1, loaded)
	assert.Equal(t, 1, healthy.LoadCount())
	assert.Contains(t, out.String(), "broken")
	assert.Contains(t, out.String(), "panicky")
}

func TestRunWithCoreModulesAndHCLConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "host.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
namespace "io.chat.branding" {
  banner = "Team Chat"
}
`), 0o644))

	out := &testutil.SafeBuffer{}
	cfg, err := NewConfig(Config{ServerName: "chat.local", ConfigPath: path})
	require.NoError(t, err)

	a := NewApp(out, cfg, hcl_adapter.NewLoader())
	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "Team Chat")
}

func TestRunWithoutWrapperFallsBackToGreeting(t *testing.T) {
	out := &testutil.SafeBuffer{}
	quiet := &testutil.StubModule{ModuleName: "quiet"}

	a := NewApp(out, testConfig(), nil, quiet)
	require.NoError(t, a.Run(context.Background()))

	assert.Contains(t, out.String(), "Welcome")
}

func TestModulesShareOneFacade(t *testing.T) {
	out := &testutil.SafeBuffer{}

	var seen []*modapi.API
	record := func(ctx context.Context, api *modapi.API) { seen = append(seen, api) }

	a := NewApp(out, testConfig(), nil,
		&testutil.StubModule{ModuleName: "first", OnLoad: record},
		&testutil.StubModule{ModuleName: "second", OnLoad: record},
	)
	ctx := ctxlog.WithLogger(context.Background(), a.logger)
	a.LoadModules(ctx)

	require.Len(t, seen, 2)
	assert.Same(t, seen[0], seen[1])
	assert.Same(t, a.API(), seen[0])
}

func TestWrapperLastWriterWinsAcrossModules(t *testing.T) {
	out := &testutil.SafeBuffer{}

	a := NewApp(out, testConfig(), nil,
		&testutil.StubModule{ModuleName: "first", OnLoad: func(ctx context.Context, api *modapi.API) {
			api.OnWrapper(func(ctx context.Context, opts *lifecycle.WrapperOpts) {
				opts.Wrapper = wrapperStub{"first"}
			})
		}},
		&testutil.StubModule{ModuleName: "second", OnLoad: func(ctx context.Context, api *modapi.API) {
			api.OnWrapper(func(ctx context.Context, opts *lifecycle.WrapperOpts) {
				opts.Wrapper = wrapperStub{"second"}
			})
		}},
	)
	ctx := ctxlog.WithLogger(context.Background(), a.logger)
	a.LoadModules(ctx)

	opts := &lifecycle.WrapperOpts{}
	a.bus.BroadcastWrapper(ctx, opts)
	assert.Equal(t, wrapperStub{"second"}, opts.Wrapper)
}
