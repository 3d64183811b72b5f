package app

import (
	"context"
	"fmt"

	"github.com/vk/modhost/internal/ctxlog"
	"github.com/vk/modhost/internal/lifecycle"
)

// Run executes one host startup cycle: load all modules, then resolve the
// shell wrapper and render it once to the output writer. The interactive
// UI loop sits above this layer; Run is what the CLI drives and what
// integration tests exercise.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	a.LoadModules(ctx)

	opts := &lifecycle.WrapperOpts{}
	a.bus.BroadcastWrapper(ctx, opts)

	if opts.Wrapper == nil {
		a.logger.Info("No module wrapped the shell.")
		fmt.Fprintln(a.outW, a.translations.TranslateString("Welcome", nil))
		return nil
	}

	a.logger.Info("Shell wrapper resolved.", "wrapper", fmt.Sprintf("%T", opts.Wrapper))
	fmt.Fprintln(a.outW, opts.Wrapper.View())
	return nil
}
