// Package roomtools is a bundled module for room curation: it pins a
// configured widget into a container at load time and contributes a
// confirmation dialog other code can open before destructive room actions.
//
// Configuration namespace: "io.chat.roomtools" with keys "pin_widget"
// (app ID), "pin_room" (room ID), and "pin_container" ("top", "right" or
// "center", default "top").
package roomtools

import (
	"context"
	"fmt"

	"github.com/vk/modhost/internal/apps"
	"github.com/vk/modhost/internal/ctxlog"
	"github.com/vk/modhost/internal/i18n"
	"github.com/vk/modhost/internal/modapi"
)

// Namespace is the module's configuration namespace.
const Namespace = "io.chat.roomtools"

// Module implements modapi.Module.
type Module struct{}

// Name implements modapi.Module.
func (m *Module) Name() string { return Namespace }

// Load registers translations and applies the configured widget pin.
func (m *Module) Load(ctx context.Context, api *modapi.API) error {
	api.RegisterTranslations(i18n.Table{
		"Remove %(widget)s from this room?": {
			"en": "Remove %(widget)s from this room?",
			"de": "%(widget)s aus diesem Raum entfernen?",
		},
		"Remove": {"en": "Remove", "de": "Entfernen"},
	})

	widgetID, _ := api.ConfigValue(Namespace, "pin_widget").(string)
	roomID, _ := api.ConfigValue(Namespace, "pin_room").(string)
	if widgetID == "" || roomID == "" {
		// Nothing to pin; the dialog contribution still loads.
		return nil
	}

	container := apps.ContainerTop
	if c, ok := api.ConfigValue(Namespace, "pin_container").(string); ok {
		container = apps.Container(c)
	}

	app := apps.App{ID: widgetID}
	for _, installed := range api.GetApps(roomID) {
		if installed.ID == widgetID {
			app = installed
			break
		}
	}

	if err := api.MoveAppToContainer(app, container, roomID); err != nil {
		return fmt.Errorf("pin widget %q in room %q: %w", widgetID, roomID, err)
	}

	ctxlog.FromContext(ctx).Debug("Pinned widget.",
		"widget", widgetID, "room", roomID, "container", container)
	return nil
}
