// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/config).
package cmdtypes

import (
	"github.com/mcbunkus/tmpl/internal/config"
	"github.com/mcbunkus/tmpl/internal/editor"
	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/prompt"
	"github.com/mcbunkus/tmpl/internal/specs"
)

// GlobalConfig holds CLI-wide state resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor. Fields that are already set are left alone, which lets tests
// inject a store, a prompter and an editor.
type GlobalConfig struct {
	// Config is the loaded config file with env overrides applied.
	Config *config.Config

	// Resolved records every setting with its source.
	Resolved *config.ResolvedConfig

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Store is the spec store.
	Store *specs.Store

	// Prompter asks yes/no questions.
	Prompter prompt.Confirmer

	// Editor opens spec files.
	Editor editor.Launcher

	// Engine is the resolved template engine name.
	Engine string

	Verbose bool
}

// Exit codes: type aliases to internal/errors constants.
const (
	ExitSuccess         = oerrors.ExitSuccess
	ExitGeneralError    = oerrors.ExitGeneralError
	ExitValidationError = oerrors.ExitValidationError
	ExitNotFound        = oerrors.ExitNotFound
	ExitGenerateFailed  = oerrors.ExitGenerateFailed
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
