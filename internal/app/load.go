package app

import (
	"context"

	"github.com/vk/modhost/internal/ctxlog"
	"github.com/vk/modhost/internal/modapi"
)

// LoadModules hands the shared facade to every module in order. A failing
// or panicking module is reported and skipped; one broken extension must
// not take the client down. It returns the number of modules that loaded
// cleanly.
func (a *App) LoadModules(ctx context.Context) int {
	logger := ctxlog.FromContext(ctx)

	loaded := 0
	for _, mod := range a.modules {
		if a.loadModule(ctx, mod) {
			loaded++
		}
	}

	logger.Info("Modules loaded.", "loaded", loaded, "failed", len(a.modules)-loaded)
	return loaded
}

// loadModule runs one module's Load with panic isolation.
func (a *App) loadModule(ctx context.Context, mod modapi.Module) (ok bool) {
	logger := ctxlog.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Module panicked during load; skipping it.", "module", mod.Name(), "panic", r)
			ok = false
		}
	}()

	if err := mod.Load(ctx, a.api); err != nil {
		logger.Error("Module failed to load; skipping it.", "module", mod.Name(), "error", err)
		return false
	}

	logger.Debug("Module loaded.", "module", mod.Name())
	return true
}
