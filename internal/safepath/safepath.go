// Package safepath validates template output paths before anything is written.
package safepath

import (
	"fmt"
	"path/filepath"
	"strings"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
)

// Check returns an ErrInvalidPath error when path is absolute, carries a
// volume or root prefix, or walks above its starting directory at any point.
// The check is purely lexical; the filesystem is never consulted.
func Check(path string) error {
	if filepath.IsAbs(path) || filepath.VolumeName(path) != "" || isRooted(path) {
		return oerrors.Wrap(oerrors.ErrInvalidPath, fmt.Sprintf("%s must be a relative path", path))
	}

	depth := 0
	for _, component := range split(path) {
		switch component {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return oerrors.Wrap(oerrors.ErrInvalidPath, fmt.Sprintf("%s escapes the working directory", path))
			}
		default:
			depth++
		}
	}

	return nil
}

func isRooted(path string) bool {
	return strings.HasPrefix(path, "/") || strings.HasPrefix(path, string(filepath.Separator))
}

// split breaks path on both '/' and the platform separator.
func split(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
}
