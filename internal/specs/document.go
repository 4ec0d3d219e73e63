package specs

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
)

// document is the on-disk shape of a spec:
//
//	[variables]
//	key = <string|integer|float|boolean|datetime>
//
//	[[templates]]
//	path = "relative/output/path"
//	body = "template source"
type document struct {
	Variables map[string]any `toml:"variables"`
	Templates []Template     `toml:"templates"`
}

// Decode parses a spec document. Failures wrap ErrParse.
func Decode(data []byte) (*Spec, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrParse, err, "unable to parse spec document")
	}

	spec := NewSpec()
	for key, raw := range doc.Variables {
		value, err := FromNative(raw)
		if err != nil {
			return nil, oerrors.WrapCause(oerrors.ErrParse, err, fmt.Sprintf("variable %s", key))
		}
		spec.Variables[key] = value
	}
	if doc.Templates != nil {
		spec.Templates = doc.Templates
	}

	return spec, nil
}

// Encode renders spec as a TOML document.
func Encode(spec *Spec) ([]byte, error) {
	doc := document{
		Variables: NativeMap(spec.Variables),
		Templates: spec.Templates,
	}
	if doc.Templates == nil {
		doc.Templates = []Template{}
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("rendering spec as TOML: %w", err)
	}
	return buf.Bytes(), nil
}
