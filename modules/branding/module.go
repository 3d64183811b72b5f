// Package branding is a bundled module that rebrands the client shell: it
// wraps the UI in a styled frame with a configurable banner and overlays
// its own translations.
//
// Configuration namespace: "io.chat.branding" with keys "banner" (string)
// and "accent_color" (hex string).
package branding

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vk/modhost/internal/ctxlog"
	"github.com/vk/modhost/internal/i18n"
	"github.com/vk/modhost/internal/lifecycle"
	"github.com/vk/modhost/internal/modapi"
)

// Namespace is the module's configuration namespace.
const Namespace = "io.chat.branding"

const defaultAccent = "#7D56F4"

// Module implements modapi.Module.
type Module struct{}

// Name implements modapi.Module.
func (m *Module) Name() string { return Namespace }

// Load registers the module's translations and its shell wrapper.
func (m *Module) Load(ctx context.Context, api *modapi.API) error {
	api.RegisterTranslations(i18n.Table{
		"Welcome": {
			"en": "Welcome",
			"de": "Willkommen",
			"fr": "Bienvenue",
		},
		"Powered by %(brand)s": {
			"en": "Powered by %(brand)s",
			"de": "Bereitgestellt von %(brand)s",
		},
	})

	banner, _ := api.ConfigValue(Namespace, "banner").(string)
	accent, ok := api.ConfigValue(Namespace, "accent_color").(string)
	if !ok {
		accent = defaultAccent
	}

	api.OnWrapper(func(ctx context.Context, opts *lifecycle.WrapperOpts) {
		// Single-slot contract: whoever writes last wins, and that is fine.
		opts.Wrapper = NewFrame(banner, accent, opts.Wrapper)
	})

	ctxlog.FromContext(ctx).Debug("Branding module loaded.", "banner", banner, "accent", accent)
	return nil
}

// Frame is the wrapper component: a bordered shell around the inner UI
// with the banner on top.
type Frame struct {
	banner string
	style  lipgloss.Style
	inner  tea.Model
}

// NewFrame builds a frame around inner, which may be nil for a bare shell.
func NewFrame(banner, accent string, inner tea.Model) Frame {
	return Frame{
		banner: banner,
		inner:  inner,
		style: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(accent)).
			Padding(0, 1),
	}
}

// Init implements tea.Model.
func (f Frame) Init() tea.Cmd {
	if f.inner == nil {
		return nil
	}
	return f.inner.Init()
}

// Update implements tea.Model.
func (f Frame) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f.inner == nil {
		return f, nil
	}
	inner, cmd := f.inner.Update(msg)
	f.inner = inner
	return f, cmd
}

// View implements tea.Model.
func (f Frame) View() string {
	body := ""
	if f.inner != nil {
		body = f.inner.View()
	}
	if f.banner == "" {
		return f.style.Render(body)
	}
	return f.style.Render(lipgloss.JoinVertical(lipgloss.Left, f.banner, body))
}
