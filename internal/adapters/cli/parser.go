// Package cli is the command-line surface: it turns argv into use case calls and
// prints reports, listings and diagnostics.
package cli

import (
	"fmt"
	"strings"

	"weathercli.app/internal/core/weather"
	"weathercli.app/pkg/errors"
)

const (
	flagPrefix           = "-"
	argumentCountMessage = "Arguments count error"
)

// Invocation is a tokenized command line
type Invocation struct {
	Command   string
	Overrides []weather.Override
	// Warnings hold malformed tokens that were skipped
	Warnings []error
}

// Parse splits the arguments (without the program name) into a command and
// ordered "-key value" overrides. Flag names are not checked here: unknown keys
// are rejected when the overrides are applied.
func Parse(args []string) (Invocation, error) {
	if len(args) == 0 {
		return Invocation{}, errors.NewValidationError(argumentCountMessage)
	}

	inv := Invocation{Command: args[0]}
	rest := args[1:]

	for i := 0; i < len(rest); {
		token := rest[i]
		if !strings.HasPrefix(token, flagPrefix) || len(token) == len(flagPrefix) {
			inv.Warnings = append(inv.Warnings, errors.NewParseError(fmt.Sprintf("unexpected argument '%s', expected -<name> <value>", token)))
			i++
			continue
		}

		key := strings.TrimPrefix(token, flagPrefix)
		if i+1 >= len(rest) {
			inv.Warnings = append(inv.Warnings, errors.NewParseError(fmt.Sprintf("flag -%s has no value", key)))
			break
		}

		inv.Overrides = append(inv.Overrides, weather.Override{Key: key, Value: rest[i+1]})
		i += 2
	}

	return inv, nil
}
