package modapi

import "context"

// AuthInfo is the opaque credential bundle used to switch the active
// logged-in account. Modules pass it back verbatim; they have no business
// interpreting it.
type AuthInfo struct {
	UserID      string
	DeviceID    string
	AccessToken string
	ServerURL   string
}

// AccountSession is the collaborator through which the facade reaches the
// backend's account operations. Retry policy lives behind this interface,
// not in the module API.
type AccountSession interface {
	// RegisterSimpleAccount registers a username/password account and
	// returns the resulting credentials without logging them in.
	RegisterSimpleAccount(ctx context.Context, username, password, displayName string) (AuthInfo, error)
	// OverwriteAccountAuth replaces the active session with the given
	// credentials, logging out whoever was signed in.
	OverwriteAccountAuth(ctx context.Context, auth AuthInfo) error
}

// Navigator is the collaborator that drives the host's view to a permalink.
type Navigator interface {
	// NavigatePermalink shows the room or event the permalink points at.
	// When andJoin is set the host also joins the room if needed.
	NavigatePermalink(ctx context.Context, uri string, andJoin bool) error
}

// Module is an externally loaded extension. The host calls Load exactly
// once, during startup, passing the shared API instance.
type Module interface {
	// Name identifies the module in logs and diagnostics.
	Name() string
	// Load lets the module register listeners, translations, and state.
	// An error marks the module failed; the host logs it and moves on.
	Load(ctx context.Context, api *API) error
}
