package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"weathercli.app/internal/core/preferences"
	"weathercli.app/internal/core/weather"
	"weathercli.app/internal/ports"
	"weathercli.app/pkg/errors"
)

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

const (
	commandHelp      = "help"
	commandSave      = "save"
	commandGet       = "get"
	commandProviders = "providers"
)

// Use case interfaces that the CLI adapter depends on
type PreferencesUseCase interface {
	Resolve(ctx context.Context, overrides []weather.Override) preferences.Resolution
	Save(ctx context.Context, prefs weather.Preferences) error
}

type LookupUseCase interface {
	Dispatch(ctx context.Context, prefs weather.Preferences) (weather.Report, error)
	Providers() []ports.ProviderInfo
}

// Options represents options for creating the CLI adapter
type Options struct {
	Preferences PreferencesUseCase
	Lookup      LookupUseCase
	Logger      ports.Logger
	Stdout      io.Writer
	Stderr      io.Writer
}

// Validate checks if all required dependencies are provided
func (opts *Options) Validate() error {
	if opts.Preferences == nil {
		return errors.NewValidationError("preferences use case is required")
	}
	if opts.Lookup == nil {
		return errors.NewValidationError("lookup use case is required")
	}
	if opts.Logger == nil {
		return errors.NewValidationError("logger is required")
	}
	if opts.Stdout == nil || opts.Stderr == nil {
		return errors.NewValidationError("output streams are required")
	}
	return nil
}

// Adapter runs one command line against the use cases
type Adapter struct {
	preferences PreferencesUseCase
	lookup      LookupUseCase
	logger      ports.Logger
	stdout      io.Writer
	stderr      io.Writer
}

// NewAdapter creates a new CLI adapter
func NewAdapter(opts Options) (*Adapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid cli options: %w", err)
	}

	return &Adapter{
		preferences: opts.Preferences,
		lookup:      opts.Lookup,
		logger:      opts.Logger,
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
	}, nil
}

// Run executes the command line and returns the process exit code.
// Query failures are reported on stderr but do not fail the process.
func (a *Adapter) Run(ctx context.Context, args []string) int {
	inv, err := Parse(args)
	if err != nil {
		a.println(a.stdout, argumentCountMessage)
		return ExitUsage
	}

	a.logger.Debug("Running command",
		ports.F("command", inv.Command),
		ports.F("overrides", len(inv.Overrides)))

	switch inv.Command {
	case commandHelp:
		a.printHelp()
		return ExitOK
	case commandProviders:
		a.printProviders()
		return ExitOK
	case commandSave:
		return a.save(ctx, inv)
	case commandGet:
		return a.get(ctx, inv)
	default:
		a.println(a.stdout, fmt.Sprintf("Unknown command %s", inv.Command))
		return ExitUsage
	}
}

func (a *Adapter) resolve(ctx context.Context, inv Invocation) weather.Preferences {
	a.warn(inv.Warnings)
	res := a.preferences.Resolve(ctx, inv.Overrides)
	a.warn(res.Warnings)
	return res.Preferences
}

func (a *Adapter) save(ctx context.Context, inv Invocation) int {
	prefs := a.resolve(ctx, inv)

	if err := a.preferences.Save(ctx, prefs); err != nil {
		a.logger.Error("Failed to save preferences", ports.F("error", err))
		a.println(a.stderr, "error: "+err.Error())
		return ExitError
	}

	a.println(a.stdout, "Preferences saved")
	return ExitOK
}

func (a *Adapter) get(ctx context.Context, inv Invocation) int {
	prefs := a.resolve(ctx, inv)

	report, err := a.lookup.Dispatch(ctx, prefs)
	if err != nil {
		a.logger.Warn("Weather query failed",
			ports.F("provider", prefs.Provider.String()),
			ports.F("error_type", errors.TypeOf(err).String()),
			ports.F("error", err))
		a.println(a.stderr, "error: "+diagnostic(err))
		return ExitOK
	}

	fmt.Fprint(a.stdout, report.Render())
	return ExitOK
}

// diagnostic phrases a query failure for the user
func diagnostic(err error) string {
	switch {
	case errors.IsPreconditionError(err):
		return "cannot query weather: " + err.Error()
	case errors.IsUnsupportedHorizonError(err):
		return "date is out of range: " + err.Error()
	case errors.IsTransportError(err):
		return "weather service is unreachable: " + err.Error()
	case errors.IsExternalAPIError(err):
		return "weather service refused the request: " + err.Error()
	case errors.IsDecodeError(err):
		return "weather service returned an unexpected response: " + err.Error()
	default:
		return err.Error()
	}
}

func (a *Adapter) printProviders() {
	var b strings.Builder
	b.WriteString("Providers:\n")
	for _, info := range a.lookup.Providers() {
		tiers := make([]string, len(info.Tiers))
		for i, t := range info.Tiers {
			tiers[i] = t.String()
		}

		name := info.ID.String()
		if info.Primary {
			name += " (default)"
		}
		fmt.Fprintf(&b, "    %s - up to %d days ahead, hourly up to day %d: %s\n",
			name, info.Bounds.Horizon, info.Bounds.ShortTerm, strings.Join(tiers, ", "))
	}
	fmt.Fprint(a.stdout, b.String())
}

func (a *Adapter) warn(warnings []error) {
	for _, w := range warnings {
		a.println(a.stderr, "warning: "+w.Error())
	}
}

func (a *Adapter) println(w io.Writer, line string) {
	if _, err := fmt.Fprintln(w, line); err != nil {
		a.logger.Error("Failed to write output", ports.F("error", err))
	}
}
