package modapi

import (
	"context"
	"fmt"

	"github.com/vk/modhost/internal/apps"
	"github.com/vk/modhost/internal/config"
	"github.com/vk/modhost/internal/dialog"
	"github.com/vk/modhost/internal/i18n"
	"github.com/vk/modhost/internal/lifecycle"
)

// Deps enumerates everything an API instance routes to. All fields are
// required; the registries are owned by the host and shared by all modules.
type Deps struct {
	Bus          *lifecycle.Bus
	Translations *i18n.Registry
	Dialogs      *dialog.Broker
	Config       *config.Accessor
	Apps         *apps.Registry
	Account      AccountSession
	Nav          Navigator
}

// API is the single facade instance given to every loaded module.
type API struct {
	bus          *lifecycle.Bus
	translations *i18n.Registry
	dialogs      *dialog.Broker
	config       *config.Accessor
	apps         *apps.Registry
	account      AccountSession
	nav          Navigator
}

// New wires a facade over the host's components. It panics on a nil
// registry or collaborator: an incompletely wired facade is a host bug, not
// a runtime condition.
func New(deps Deps) *API {
	for name, missing := range map[string]bool{
		"Bus":          deps.Bus == nil,
		"Translations": deps.Translations == nil,
		"Dialogs":      deps.Dialogs == nil,
		"Config":       deps.Config == nil,
		"Apps":         deps.Apps == nil,
		"Account":      deps.Account == nil,
		"Nav":          deps.Nav == nil,
	} {
		if missing {
			panic(fmt.Sprintf("modapi: Deps.%s is required", name))
		}
	}

	return &API{
		bus:          deps.Bus,
		translations: deps.Translations,
		dialogs:      deps.Dialogs,
		config:       deps.Config,
		apps:         deps.Apps,
		account:      deps.Account,
		nav:          deps.Nav,
	}
}

// --- Lifecycle ---

// OnWrapper subscribes the module to the wrapper lifecycle moment.
func (a *API) OnWrapper(l lifecycle.WrapperListener) {
	a.bus.OnWrapper(l)
}

// --- Translations ---

// RegisterTranslations overlays the module's translation table onto the
// shared registry.
func (a *API) RegisterTranslations(table i18n.Table) {
	a.translations.Register(table)
}

// TranslateString resolves and substitutes a translation for the active UI
// language. It never fails; see the i18n package for the fallback chain.
func (a *API) TranslateString(key string, vars map[string]any) string {
	return a.translations.TranslateString(key, vars)
}

// --- Dialogs ---

// OpenDialog opens a dialog whose result carries an M. It is a function
// rather than a method because Go methods cannot introduce type parameters.
func OpenDialog[M any](ctx context.Context, a *API, opts dialog.Options, factory dialog.BodyFactory[M], extra map[string]any) (*dialog.Session[M], error) {
	return dialog.Open(ctx, a.dialogs, opts, factory, extra)
}

// --- Config ---

// ConfigValue returns the value at config[namespace][key] verbatim, or nil
// when absent. Root-level keys are unreachable by design.
func (a *API) ConfigValue(namespace, key string) any {
	return a.config.Value(namespace, key)
}

// --- Apps ---

// GetApps returns the ordered apps associated with a room.
func (a *API) GetApps(roomID string) []apps.App {
	return a.apps.GetApps(roomID)
}

// AppAvatarURL derives a display URL for an app's avatar, "" when it has none.
func (a *API) AppAvatarURL(app apps.App, width, height int, method apps.ResizeMethod) string {
	return a.apps.AppAvatarURL(app, width, height, method)
}

// IsAppInContainer reports whether the app occupies the container in the room.
func (a *API) IsAppInContainer(app apps.App, container apps.Container, roomID string) bool {
	return a.apps.IsAppInContainer(app, container, roomID)
}

// MoveAppToContainer reassigns the app's container slot for one room.
func (a *API) MoveAppToContainer(app apps.App, container apps.Container, roomID string) error {
	return a.apps.MoveAppToContainer(app, container, roomID)
}

// --- Account & navigation ---

// RegisterSimpleAccount registers a new account through the backend session.
func (a *API) RegisterSimpleAccount(ctx context.Context, username, password, displayName string) (AuthInfo, error) {
	return a.account.RegisterSimpleAccount(ctx, username, password, displayName)
}

// OverwriteAccountAuth switches the active logged-in account.
func (a *API) OverwriteAccountAuth(ctx context.Context, auth AuthInfo) error {
	return a.account.OverwriteAccountAuth(ctx, auth)
}

// NavigatePermalink drives the host view to a permalink.
func (a *API) NavigatePermalink(ctx context.Context, uri string, andJoin bool) error {
	return a.nav.NavigatePermalink(ctx, uri, andJoin)
}
