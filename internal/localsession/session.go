// Package localsession provides in-process implementations of the facade's
// account and navigation collaborators, used when no backend gateway is
// configured (development, tests, offline demos).
package localsession

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vk/modhost/internal/ctxlog"
	"github.com/vk/modhost/internal/modapi"
)

// Session keeps accounts and navigation history in memory. One instance
// backs the whole process, mirroring the single active login of a real
// client.
type Session struct {
	serverName string

	mu       sync.Mutex
	accounts map[string]modapi.AuthInfo
	active   modapi.AuthInfo
	history  []string
}

var (
	_ modapi.AccountSession = (*Session)(nil)
	_ modapi.Navigator      = (*Session)(nil)
)

// New creates a local session for the given server name, e.g. "chat.local".
func New(serverName string) *Session {
	return &Session{
		serverName: serverName,
		accounts:   make(map[string]modapi.AuthInfo),
	}
}

// RegisterSimpleAccount mints credentials without any network round trip.
// Registering the same username twice fails like a real backend would.
func (s *Session) RegisterSimpleAccount(ctx context.Context, username, password, displayName string) (modapi.AuthInfo, error) {
	if username == "" || password == "" {
		return modapi.AuthInfo{}, fmt.Errorf("username and password are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[username]; exists {
		return modapi.AuthInfo{}, fmt.Errorf("account %q already registered", username)
	}

	auth := modapi.AuthInfo{
		UserID:      fmt.Sprintf("@%s:%s", username, s.serverName),
		DeviceID:    strings.ToUpper(uuid.NewString()[:8]),
		AccessToken: uuid.NewString(),
		ServerURL:   "https://" + s.serverName,
	}
	s.accounts[username] = auth

	ctxlog.FromContext(ctx).Info("Registered local account.", "user_id", auth.UserID, "display_name", displayName)
	return auth, nil
}

// OverwriteAccountAuth switches the active login.
func (s *Session) OverwriteAccountAuth(ctx context.Context, auth modapi.AuthInfo) error {
	if auth.UserID == "" || auth.AccessToken == "" {
		return fmt.Errorf("auth info must carry user_id and access_token")
	}

	s.mu.Lock()
	previous := s.active
	s.active = auth
	s.mu.Unlock()

	ctxlog.FromContext(ctx).Info("Switched active account.",
		"user_id", auth.UserID, "previous_user_id", previous.UserID)
	return nil
}

// ActiveAuth returns the credentials of the active login, zero when nobody
// is signed in.
func (s *Session) ActiveAuth() modapi.AuthInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// NavigatePermalink records the visit. A real client would route its view;
// the local session just remembers where it was sent.
func (s *Session) NavigatePermalink(ctx context.Context, uri string, andJoin bool) error {
	if uri == "" {
		return fmt.Errorf("permalink uri is required")
	}

	s.mu.Lock()
	s.history = append(s.history, uri)
	s.mu.Unlock()

	ctxlog.FromContext(ctx).Info("Navigated to permalink.", "uri", uri, "and_join", andJoin)
	return nil
}

// History returns the permalinks visited so far, in order.
func (s *Session) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}
