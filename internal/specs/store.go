package specs

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/mcbunkus/tmpl/internal/errors"
	"github.com/mcbunkus/tmpl/internal/output"
)

// specFileMode is the permission used for newly written spec files.
const specFileMode = 0o644

// Store provides access to spec files co-located in a single flat directory.
// Callers never touch directory entries directly.
type Store struct {
	dir string
}

// NewStore opens the store rooted at dir, which must be an existing directory.
func NewStore(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("spec directory %s", dir))
		}
		return nil, oerrors.WrapCause(oerrors.ErrIO, err, fmt.Sprintf("opening spec directory %s", dir))
	}
	if !info.IsDir() {
		return nil, oerrors.Wrap(oerrors.ErrNotAFile, fmt.Sprintf("%s is not a directory", dir))
	}
	return &Store{dir: dir}, nil
}

// Dir returns the store directory.
func (s *Store) Dir() string {
	return s.dir
}

// ValidateName ensures name is a plain file name: no separators, not "." or
// "..", not absolute and not empty.
func ValidateName(name string) error {
	if name == "." || name == ".." {
		return oerrors.Wrap(oerrors.ErrInvalidName, fmt.Sprintf("%q is not a valid spec name", name))
	}
	if name == "" || filepath.IsAbs(name) || filepath.Base(name) != name ||
		strings.ContainsAny(name, `/`+string(filepath.Separator)) {
		return oerrors.Wrap(oerrors.ErrInvalidName, fmt.Sprintf("%q must be a simple filename", name))
	}
	return nil
}

// Exists reports whether name is valid and refers to a regular file in the store.
func (s *Store) Exists(name string) bool {
	if ValidateName(name) != nil {
		return false
	}
	info, err := os.Stat(s.join(name))
	return err == nil && info.Mode().IsRegular()
}

// ReadToString returns the raw contents of a spec file.
func (s *Store) ReadToString(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", fmt.Errorf("unable to read spec: %w", err)
	}

	data, err := os.ReadFile(s.join(name))
	if err != nil {
		return "", s.fileError(name, err, "failed to read")
	}
	return string(data), nil
}

// Path returns the full path of an existing spec file.
func (s *Store) Path(name string) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	path := s.join(name)
	info, err := os.Stat(path)
	if err != nil {
		return "", s.fileError(name, err, "failed to stat")
	}
	if !info.Mode().IsRegular() {
		return "", oerrors.Wrap(oerrors.ErrNotAFile, fmt.Sprintf("%s is not a file", name))
	}
	return path, nil
}

// ReadSpec reads and decodes a spec.
func (s *Store) ReadSpec(name string) (*Spec, error) {
	contents, err := s.ReadToString(name)
	if err != nil {
		return nil, err
	}

	spec, err := Decode([]byte(contents))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return spec, nil
}

// DeleteSpec removes a spec file.
func (s *Store) DeleteSpec(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return fmt.Errorf("unable to delete spec: %w", err)
	}

	if err := os.Remove(path); err != nil {
		return s.fileError(name, err, "failed to delete")
	}
	output.Debug("deleted spec", "name", name, "path", path)
	return nil
}

// writeData writes the encoded spec into a freshly created file.
// Replaced in tests to simulate a full disk.
var writeData = func(f *os.File, data []byte) error {
	_, err := f.Write(data)
	return err
}

// WriteSpec encodes spec and writes it under name. An existing entry of the
// same name is never overwritten.
func (s *Store) WriteSpec(name string, spec *Spec) error {
	if err := ValidateName(name); err != nil {
		return fmt.Errorf("unable to write spec: %w", err)
	}

	data, err := Encode(spec)
	if err != nil {
		return err
	}

	path := s.join(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, specFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return oerrors.Wrap(oerrors.ErrAlreadyExists, name)
		}
		return s.fileError(name, err, "failed to create")
	}

	if err := writeData(f, data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return s.fileError(name, err, "failed to write")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return s.fileError(name, err, "failed to write")
	}

	output.Debug("wrote spec", "name", name, "path", path)
	return nil
}

// Copy duplicates the src spec file as dst, overwriting dst if present.
// Confirming the overwrite is the caller's job.
func (s *Store) Copy(src, dst string) error {
	if err := ValidateName(src); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}
	if err := ValidateName(dst); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	if src == dst {
		return oerrors.Wrap(oerrors.ErrInvalidName,
			fmt.Sprintf("cannot copy %s to itself, this would truncate it", src))
	}

	srcPath, err := s.Path(src)
	if err != nil {
		return fmt.Errorf("can't copy: %w", err)
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return s.fileError(src, err, "failed to open")
	}
	defer in.Close()

	out, err := os.OpenFile(s.join(dst), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, specFileMode)
	if err != nil {
		return s.fileError(dst, err, "failed to create")
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return s.fileError(dst, err, "failed to copy to")
	}
	if err := out.Close(); err != nil {
		return s.fileError(dst, err, "failed to copy to")
	}

	output.Debug("copied spec", "src", src, "dst", dst)
	return nil
}

// List returns the names of every regular file in the store. Directories and
// other entry types are skipped. Order follows the directory listing.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, oerrors.WrapCause(oerrors.ErrIO, err, fmt.Sprintf("reading spec directory %s", s.dir))
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		info, err := os.Stat(s.join(entry.Name()))
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (s *Store) join(name string) string {
	return filepath.Join(s.dir, name)
}

// fileError classifies an os error for a spec file.
func (s *Store) fileError(name string, err error, action string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("spec %s doesn't exist", name))
	}
	return oerrors.WrapCause(oerrors.ErrIO, err, fmt.Sprintf("%s %s", action, name))
}
