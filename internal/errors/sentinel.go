package errors

import "errors"

// Sentinel errors for known conditions.
var (
	// ErrInvalidName indicates a spec name that is not a plain file name.
	ErrInvalidName = errors.New("invalid spec name")

	// ErrNotFound indicates a spec or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a spec would be overwritten.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotAFile indicates a store entry that is not a regular file.
	ErrNotAFile = errors.New("not a file")

	// ErrParse indicates a malformed spec document.
	ErrParse = errors.New("parse error")

	// ErrInvalidPath indicates an unsafe template output path.
	ErrInvalidPath = errors.New("invalid path")

	// ErrTemplateSyntax indicates the template engine rejected a template body.
	ErrTemplateSyntax = errors.New("template syntax error")

	// ErrRender indicates the template engine failed while rendering.
	ErrRender = errors.New("render error")

	// ErrIO indicates a generic read, write or remove failure.
	ErrIO = errors.New("io error")

	// ErrEditorLaunch indicates the editor is unset, failed to start or exited non-zero.
	ErrEditorLaunch = errors.New("editor launch error")

	// ErrPrompt indicates reading an answer from the input stream failed.
	ErrPrompt = errors.New("prompt error")

	// ErrValidation indicates a spec failed schema validation.
	ErrValidation = errors.New("validation error")
)
