package specs

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/safepath"
)

//go:embed schema.cue
var schemaCUE string

// ValidationError is a single problem found in a spec document.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("spec validation failed:\n")
	for _, err := range e {
		sb.WriteString("  ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// Unwrap lets errors.Is match ErrValidation.
func (e ValidationErrors) Unwrap() error {
	return oerrors.ErrValidation
}

// Validator checks spec documents against the embedded CUE schema.
type Validator struct {
	ctx  *cue.Context
	spec cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Spec"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("looking up #Spec: %w", err)
	}

	return &Validator{ctx: ctx, spec: def}, nil
}

// Validate checks a raw spec document. It reports TOML syntax problems,
// schema violations and unsafe template paths. A nil return means the
// document is valid.
func (v *Validator) Validate(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return ValidationErrors{{Message: err.Error()}}
	}

	var errs ValidationErrors

	value := v.ctx.Encode(normalize(raw))
	if err := v.spec.Unify(value).Validate(cue.Concrete(true)); err != nil {
		for _, e := range cueerrors.Errors(err) {
			format, args := e.Msg()
			errs = append(errs, ValidationError{
				Field:   strings.Join(e.Path(), "."),
				Message: fmt.Sprintf(format, args...),
			})
		}
	}

	// Path safety only makes sense once the shape is right.
	if len(errs) == 0 {
		spec, err := Decode(data)
		if err != nil {
			return ValidationErrors{{Message: err.Error()}}
		}
		for i, t := range spec.Templates {
			if err := safepath.Check(t.Path); err != nil {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("templates.%d.path", i),
					Message: err.Error(),
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// normalize replaces TOML date/time values with their literal text so the
// schema sees plain scalars.
func normalize(v any) any {
	switch n := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(n))
		for k, val := range n {
			out[k] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(n))
		for i, val := range n {
			out[i] = normalize(val)
		}
		return out
	case time.Time, toml.LocalDateTime, toml.LocalDate, toml.LocalTime:
		return DateTime{value: n}.Literal()
	default:
		return v
	}
}
