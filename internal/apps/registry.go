package apps

import (
	"sync"
)

// Registry implements the per-room app and placement store using maps and a
// mutex for thread-safe concurrent access.
type Registry struct {
	mu        sync.RWMutex
	rooms     map[string][]App                // Key: room ID, Value: ordered installed apps
	placement map[string]map[string]Container // Key: room ID, Value: app ID -> container
	media     MediaResolver
}

// NewRegistry creates an empty registry backed by the given media resolver.
func NewRegistry(media MediaResolver) *Registry {
	return &Registry{
		rooms:     make(map[string][]App),
		placement: make(map[string]map[string]Container),
		media:     media,
	}
}

// AddApp installs an app into a room, keeping installation order. Adding
// the same app ID twice is idempotent. Host-side operation.
func (r *Registry) AddApp(roomID string, app App) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.rooms[roomID] {
		if existing.ID == app.ID {
			return
		}
	}
	r.rooms[roomID] = append(r.rooms[roomID], app)
}

// RemoveApp uninstalls an app from a room and drops its placement.
// Host-side operation; removing an absent app is a no-op.
func (r *Registry) RemoveApp(roomID, appID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	installed := r.rooms[roomID]
	for i, existing := range installed {
		if existing.ID == appID {
			r.rooms[roomID] = append(installed[:i], installed[i+1:]...)
			break
		}
	}
	if slots, ok := r.placement[roomID]; ok {
		delete(slots, appID)
	}
}

// GetApps returns the ordered apps installed in a room. The result is a
// copy; an unknown room yields an empty slice, never an error.
func (r *Registry) GetApps(roomID string) []App {
	r.mu.RLock()
	defer r.mu.RUnlock()

	installed := r.rooms[roomID]
	out := make([]App, len(installed))
	copy(out, installed)
	return out
}

// IsAppInContainer reports whether the app currently occupies the given
// container in the room. Pure predicate: unknown rooms, apps, and even
// unknown containers simply answer false.
func (r *Registry) IsAppInContainer(app App, container Container, roomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	slots, ok := r.placement[roomID]
	if !ok {
		return false
	}
	placed, ok := slots[app.ID]
	return ok && placed == container
}

// MoveAppToContainer reassigns the app's container slot for one room. The
// app leaves whatever container it occupied before; moving it to its
// current container is a no-op. An unknown container is rejected.
func (r *Registry) MoveAppToContainer(app App, container Container, roomID string) error {
	if !validContainer(container) {
		return &ErrUnknownContainer{Container: container}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	slots, ok := r.placement[roomID]
	if !ok {
		slots = make(map[string]Container)
		r.placement[roomID] = slots
	}
	// One container per (app, room): the map key makes the implicit
	// removal from the prior container structural.
	slots[app.ID] = container
	return nil
}

// AppAvatarURL derives a display URL for the app's avatar through the media
// resolver, or "" when the app has no avatar.
func (r *Registry) AppAvatarURL(app App, width, height int, method ResizeMethod) string {
	if app.AvatarURI == "" {
		return ""
	}
	return r.media.ThumbnailURL(app.AvatarURI, width, height, method)
}
