// Package app wires configuration, adapters and use cases into a runnable command.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"weathercli.app/internal/adapters/cli"
	"weathercli.app/internal/config"
	"weathercli.app/internal/core/lookup"
	"weathercli.app/internal/core/preferences"
	"weathercli.app/internal/ports"
)

var defaultLogOutput io.Writer = os.Stderr

type Application struct {
	config *config.Config
	deps   *DependencyContainer

	preferencesUseCase *preferences.UseCase
	lookupUseCase      *lookup.UseCase

	cli *cli.Adapter
}

// Options holds the output streams and test overrides of an application
type Options struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Overrides DependencyOverrides
}

func NewApplication(cfg *config.Config, opts Options) (*Application, error) {
	deps, err := NewDependencyContainer(cfg, opts.Overrides)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app := &Application{config: cfg, deps: deps}

	if err := app.initializeUseCases(); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(opts); err != nil {
		_ = deps.Cleanup()
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	preferencesUseCase, err := preferences.NewUseCase(preferences.UseCaseDependencies{
		Repository: a.deps.Preferences,
		Logger:     a.deps.Logger,
	})
	if err != nil {
		return fmt.Errorf("create preferences use case: %w", err)
	}
	a.preferencesUseCase = preferencesUseCase

	lookupUseCase, err := lookup.NewUseCase(lookup.UseCaseDependencies{
		Registry: a.deps.Registry,
		Logger:   a.deps.Logger,
		Metrics:  a.deps.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create lookup use case: %w", err)
	}
	a.lookupUseCase = lookupUseCase

	return nil
}

func (a *Application) initializeAdapters(opts Options) error {
	stdout, stderr := opts.Stdout, opts.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	adapter, err := cli.NewAdapter(cli.Options{
		Preferences: a.preferencesUseCase,
		Lookup:      a.lookupUseCase,
		Logger:      a.deps.Logger,
		Stdout:      stdout,
		Stderr:      stderr,
	})
	if err != nil {
		return fmt.Errorf("create cli adapter: %w", err)
	}
	a.cli = adapter
	return nil
}

// Run executes one command line and returns the exit code
func (a *Application) Run(ctx context.Context, args []string) int {
	return a.cli.Run(ctx, args)
}

// Shutdown flushes metrics and closes the preferences store
func (a *Application) Shutdown() error {
	if err := a.deps.Cleanup(); err != nil {
		a.deps.Logger.Warn("Cleanup failed", ports.F("error", err))
		return err
	}
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// InvocationID identifies this run in the logs
func (a *Application) InvocationID() string {
	return a.deps.InvocationID
}
