package roomtools

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vk/modhost/internal/dialog"
	"github.com/vk/modhost/internal/modapi"
)

// Removal is the result model of the widget-removal confirmation dialog.
type Removal struct {
	WidgetID string
	RoomID   string
}

// ConfirmRemoval opens a dialog asking the user to confirm removing a
// widget from a room. The session resolves with DidOkOrSubmit=true and a
// Removal when confirmed.
func ConfirmRemoval(ctx context.Context, api *modapi.API, widgetName, widgetID, roomID string) (*dialog.Session[Removal], error) {
	title := api.TranslateString("Remove %(widget)s from this room?", map[string]any{"widget": widgetName})
	opts := dialog.Options{
		Title:       title,
		ActionLabel: api.TranslateString("Remove", nil),
	}

	return modapi.OpenDialog(ctx, api, opts, func(props dialog.Props[Removal]) (tea.Model, error) {
		return confirmBody{
			question: title,
			props:    props,
			removal:  Removal{WidgetID: widgetID, RoomID: roomID},
		}, nil
	}, map[string]any{"roomId": roomID})
}

// confirmBody is the dialog body: yes submits, anything else dismisses.
type confirmBody struct {
	question string
	props    dialog.Props[Removal]
	removal  Removal
}

var questionStyle = lipgloss.NewStyle().Bold(true)

// Init implements tea.Model.
func (b confirmBody) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (b confirmBody) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch key.String() {
	case "y", "enter":
		b.props.Submit(b.removal)
	case "n", "esc":
		b.props.Close()
	}
	return b, nil
}

// View implements tea.Model.
func (b confirmBody) View() string {
	return questionStyle.Render(b.question) + "\n[y] remove  [n] keep"
}
