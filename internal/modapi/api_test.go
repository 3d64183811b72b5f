package modapi

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/modhost/internal/apps"
	"github.com/vk/modhost/internal/config"
	"github.com/vk/modhost/internal/ctxlog"
	"github.com/vk/modhost/internal/dialog"
	"github.com/vk/modhost/internal/i18n"
	"github.com/vk/modhost/internal/lifecycle"
	"github.com/vk/modhost/internal/media"
)

type fakeAccount struct {
	registered  []string
	overwritten []AuthInfo
}

func (f *fakeAccount) RegisterSimpleAccount(ctx context.Context, username, password, displayName string) (AuthInfo, error) {
	f.registered = append(f.registered, username)
	return AuthInfo{UserID: "@" + username + ":chat.local", AccessToken: "tok"}, nil
}

func (f *fakeAccount) OverwriteAccountAuth(ctx context.Context, auth AuthInfo) error {
	f.overwritten = append(f.overwritten, auth)
	return nil
}

type fakeNav struct {
	visited []string
}

func (f *fakeNav) NavigatePermalink(ctx context.Context, uri string, andJoin bool) error {
	f.visited = append(f.visited, uri)
	return nil
}

type nullModel struct{}

func (nullModel) Init() tea.Cmd { return nil }

func (nullModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return nullModel{}, nil }

func (nullModel) View() string { return "" }

func testCtx() context.Context {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return ctxlog.WithLogger(context.Background(), logger)
}

func newTestAPI(t *testing.T) (*API, *fakeAccount, *fakeNav) {
	t.Helper()
	account := &fakeAccount{}
	nav := &fakeNav{}
	api := New(Deps{
		Bus:          lifecycle.NewBus(),
		Translations: i18n.NewRegistry(),
		Dialogs:      dialog.NewBroker(),
		Config: config.NewAccessor(config.Document{
			"io.chat.jitsi": map[string]any{"preferred_domain": "meet.chat.local"},
		}),
		Apps:    apps.NewRegistry(media.NewResolver("https://chat.local")),
		Account: account,
		Nav:     nav,
	})
	return api, account, nav
}

func TestNewPanicsOnMissingDep(t *testing.T) {
	assert.Panics(t, func() {
		New(Deps{})
	})
}

func TestFacadeRoutesWrapperBroadcast(t *testing.T) {
	api, _, _ := newTestAPI(t)

	api.OnWrapper(func(ctx context.Context, opts *lifecycle.WrapperOpts) {
		opts.Wrapper = nullModel{}
	})

	// The facade is only a registration path; the host broadcasts on the
	// same bus it handed to Deps.
	opts := &lifecycle.WrapperOpts{}
	api.bus.BroadcastWrapper(testCtx(), opts)
	assert.Equal(t, nullModel{}, opts.Wrapper)
}

func TestFacadeTranslations(t *testing.T) {
	api, _, _ := newTestAPI(t)

	api.RegisterTranslations(i18n.Table{
		"hi %(name)s": {"en": "hi %(name)s"},
	})
	assert.Equal(t, "hi X", api.TranslateString("hi %(name)s", map[string]any{"name": "X"}))
}

func TestFacadeConfigValue(t *testing.T) {
	api, _, _ := newTestAPI(t)

	assert.Equal(t, "meet.chat.local", api.ConfigValue("io.chat.jitsi", "preferred_domain"))
	assert.Nil(t, api.ConfigValue("io.chat.jitsi", "absent"))
	assert.Nil(t, api.ConfigValue("", "io.chat.jitsi"))
}

func TestFacadeDialogRoundTrip(t *testing.T) {
	api, _, _ := newTestAPI(t)

	type pick struct{ X int }

	var props dialog.Props[pick]
	s, err := OpenDialog(testCtx(), api, dialog.WithTitle("Pick one"), func(p dialog.Props[pick]) (tea.Model, error) {
		props = p
		return nullModel{}, nil
	}, nil)
	require.NoError(t, err)

	props.Submit(pick{X: 1})

	res, err := s.Await(testCtx())
	require.NoError(t, err)
	assert.True(t, res.DidOkOrSubmit)
	assert.Equal(t, pick{X: 1}, res.Model)
}

func TestFacadeAppPlacement(t *testing.T) {
	api, _, _ := newTestAPI(t)
	room := "!lobby:chat.local"
	app := apps.App{ID: "jitsi", AvatarURI: "mxc://chat.local/abc"}

	require.NoError(t, api.MoveAppToContainer(app, apps.ContainerTop, room))
	assert.True(t, api.IsAppInContainer(app, apps.ContainerTop, room))

	url := api.AppAvatarURL(app, 32, 32, apps.ResizeCrop)
	assert.Contains(t, url, "method=crop")

	assert.Empty(t, api.GetApps(room), "placement does not imply installation")
}

func TestFacadeAccountAndNavigation(t *testing.T) {
	api, account, nav := newTestAPI(t)
	ctx := testCtx()

	auth, err := api.RegisterSimpleAccount(ctx, "bridgebot", "s3cret", "Bridge Bot")
	require.NoError(t, err)
	assert.Equal(t, "@bridgebot:chat.local", auth.UserID)

	require.NoError(t, api.OverwriteAccountAuth(ctx, auth))
	require.NoError(t, api.NavigatePermalink(ctx, "https://chat.local/#/!lobby:chat.local", true))

	assert.Equal(t, []string{"bridgebot"}, account.registered)
	require.Len(t, account.overwritten, 1)
	assert.Equal(t, auth, account.overwritten[0])
	assert.Equal(t, []string{"https://chat.local/#/!lobby:chat.local"}, nav.visited)
}
