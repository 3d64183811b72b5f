package viper_adapter

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modhost/internal/config"
	"github.com/vk/modhost/internal/ctxlog"
)

func testCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadYAMLKeepsDottedNamespaces(t *testing.T) {
	path := writeFile(t, "host.yaml", `
default_server: chat.local
io.chat.jitsi:
  preferred_domain: meet.chat.local
  use_e2e: true
`)

	doc, err := NewLoader().Load(testCtx(), path)
	require.NoError(t, err)

	a := config.NewAccessor(doc)
	assert.Equal(t, "meet.chat.local", a.Value("io.chat.jitsi", "preferred_domain"))
	assert.Equal(t, true, a.Value("io.chat.jitsi", "use_e2e"))
	assert.Nil(t, a.Value("", "default_server"))
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "host.toml", `
["io.chat.branding"]
banner = "Welcome"
`)

	doc, err := NewLoader().Load(testCtx(), path)
	require.NoError(t, err)

	a := config.NewAccessor(doc)
	assert.Equal(t, "Welcome", a.Value("io.chat.branding", "banner"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(testCtx(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
