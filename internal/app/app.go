package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/modhost/internal/apps"
	"github.com/vk/modhost/internal/backend"
	"github.com/vk/modhost/internal/config"
	"github.com/vk/modhost/internal/ctxlog"
	"github.com/vk/modhost/internal/dialog"
	"github.com/vk/modhost/internal/i18n"
	"github.com/vk/modhost/internal/lifecycle"
	"github.com/vk/modhost/internal/localsession"
	"github.com/vk/modhost/internal/media"
	"github.com/vk/modhost/internal/modapi"
)

// App encapsulates the host's dependencies, configuration, and lifecycle.
type App struct {
	outW         io.Writer
	logger       *slog.Logger
	bus          *lifecycle.Bus
	translations *i18n.Registry
	dialogs      *dialog.Broker
	appRegistry  *apps.Registry
	api          *modapi.API
	modules      []modapi.Module
}

// NewApp is the constructor for the host. It returns a fully initialized
// App instance, including its own isolated logger and registries. A
// failure to load the configuration document is a fatal startup error.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...modapi.Module) *App {
	logger := newLogger(cfg, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var doc config.Document
	if cfg.ConfigPath != "" {
		var err error
		doc, err = loader.Load(ctx, cfg.ConfigPath)
		if err != nil {
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		logger.Debug("Configuration document loaded.", "path", cfg.ConfigPath)
	}

	translations := i18n.NewRegistry()
	translations.SetLanguage(cfg.Language)

	bus := lifecycle.NewBus()
	dialogs := dialog.NewBroker()
	appRegistry := apps.NewRegistry(media.NewResolver("https://" + cfg.ServerName))

	// Collaborators: a socket.io gateway when configured, fully local
	// otherwise.
	var (
		account modapi.AccountSession
		nav     modapi.Navigator
	)
	if cfg.GatewayURL != "" {
		client := backend.NewClient(backend.ClientConfig{URL: cfg.GatewayURL})
		account, nav = client, client
		logger.Debug("Using backend gateway collaborators.", "gateway", cfg.GatewayURL)
	} else {
		session := localsession.New(cfg.ServerName)
		account, nav = session, session
		logger.Debug("Using local in-process collaborators.")
	}

	api := modapi.New(modapi.Deps{
		Bus:          bus,
		Translations: translations,
		Dialogs:      dialogs,
		Config:       config.NewAccessor(doc),
		Apps:         appRegistry,
		Account:      account,
		Nav:          nav,
	})

	if len(modules) == 0 {
		modules = coreModules
	}

	return &App{
		outW:         outW,
		logger:       logger,
		bus:          bus,
		translations: translations,
		dialogs:      dialogs,
		appRegistry:  appRegistry,
		api:          api,
		modules:      modules,
	}
}

// API returns the facade instance shared by all modules. This is primarily
// for testing.
func (a *App) API() *modapi.API {
	return a.api
}

// AppRegistry returns the host's app/container registry for host-side
// seeding (widget installs are a host concern, not a module one).
func (a *App) AppRegistry() *apps.Registry {
	return a.appRegistry
}
