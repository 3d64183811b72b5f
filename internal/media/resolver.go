// Package media derives HTTP display URLs from the chat backend's media
// URIs (mxc://server/id). Only the URL derivation lives here; fetching,
// caching, and the semantics of unknown resize methods belong to the media
// service itself.
package media

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vk/modhost/internal/apps"
)

// Resolver implements apps.MediaResolver against one media service base URL.
type Resolver struct {
	baseURL string
}

// NewResolver creates a resolver for the media service at baseURL, e.g.
// "https://chat.local".
func NewResolver(baseURL string) *Resolver {
	return &Resolver{baseURL: strings.TrimRight(baseURL, "/")}
}

// ThumbnailURL builds the thumbnail endpoint URL for an mxc URI. A URI that
// does not look like mxc://server/id resolves to "": a missing avatar and a
// malformed one degrade the same way, to no image.
func (r *Resolver) ThumbnailURL(mediaURI string, width, height int, method apps.ResizeMethod) string {
	server, mediaID, ok := splitMXC(mediaURI)
	if !ok {
		return ""
	}

	q := url.Values{}
	q.Set("width", fmt.Sprint(width))
	q.Set("height", fmt.Sprint(height))
	// The method string is forwarded as-is; validation of exotic values is
	// the media service's call.
	q.Set("method", string(method))

	return fmt.Sprintf("%s/_chat/media/v3/thumbnail/%s/%s?%s",
		r.baseURL, url.PathEscape(server), url.PathEscape(mediaID), q.Encode())
}

// splitMXC splits mxc://server/id into its parts.
func splitMXC(uri string) (server, mediaID string, ok bool) {
	rest, found := strings.CutPrefix(uri, "mxc://")
	if !found {
		return "", "", false
	}
	server, mediaID, found = strings.Cut(rest, "/")
	if !found || server == "" || mediaID == "" {
		return "", "", false
	}
	return server, mediaID, true
}
