package backend

import (
	"context"
	"fmt"

	"github.com/vk/modhost/internal/modapi"
)

var (
	_ modapi.AccountSession = (*Client)(nil)
	_ modapi.Navigator      = (*Client)(nil)
)

// Gateway event names for the account and navigation operations.
const (
	eventRegister      = "account:register"
	eventRegisterOK    = "account:registered"
	eventOverwrite     = "account:overwrite_auth"
	eventOverwriteOK   = "account:auth_set"
	eventNavigate      = "navigate:permalink"
	eventNavigateOK    = "navigate:done"
	eventAccountError  = "account:error"
	eventNavigateError = "navigate:error"
)

// RegisterSimpleAccount implements modapi.AccountSession.
func (c *Client) RegisterSimpleAccount(ctx context.Context, username, password, displayName string) (modapi.AuthInfo, error) {
	payload := map[string]any{
		"username": username,
		"password": password,
	}
	if displayName != "" {
		payload["display_name"] = displayName
	}

	value, err := c.exchange(ctx, eventRegister, payload, eventRegisterOK, eventAccountError)
	if err != nil {
		return modapi.AuthInfo{}, err
	}
	return decodeAuthInfo(value)
}

// OverwriteAccountAuth implements modapi.AccountSession.
func (c *Client) OverwriteAccountAuth(ctx context.Context, auth modapi.AuthInfo) error {
	payload := map[string]any{
		"user_id":      auth.UserID,
		"device_id":    auth.DeviceID,
		"access_token": auth.AccessToken,
		"server_url":   auth.ServerURL,
	}
	_, err := c.exchange(ctx, eventOverwrite, payload, eventOverwriteOK, eventAccountError)
	return err
}

// NavigatePermalink implements modapi.Navigator.
func (c *Client) NavigatePermalink(ctx context.Context, uri string, andJoin bool) error {
	payload := map[string]any{
		"uri":      uri,
		"and_join": andJoin,
	}
	_, err := c.exchange(ctx, eventNavigate, payload, eventNavigateOK, eventNavigateError)
	return err
}

// decodeAuthInfo reads the gateway's registration response.
func decodeAuthInfo(value any) (modapi.AuthInfo, error) {
	fields, ok := value.(map[string]any)
	if !ok {
		return modapi.AuthInfo{}, fmt.Errorf("unexpected registration response type %T", value)
	}

	auth := modapi.AuthInfo{
		UserID:      stringField(fields, "user_id"),
		DeviceID:    stringField(fields, "device_id"),
		AccessToken: stringField(fields, "access_token"),
		ServerURL:   stringField(fields, "server_url"),
	}
	if auth.UserID == "" || auth.AccessToken == "" {
		return modapi.AuthInfo{}, fmt.Errorf("registration response missing user_id or access_token: %v", fields)
	}
	return auth, nil
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}
