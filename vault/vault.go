package vault

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notedly/minutes/errors"
)

// Vault is a store of markdown notes addressed by relative path.
type Vault interface {
	// Read returns the note content at path.
	Read(path string) (string, error)
	// Write replaces the note content at path, creating it if needed.
	Write(path string, content string) error
	// Exists reports whether a note exists at path.
	Exists(path string) bool
	// Create writes a new note, appending a numeric suffix to the name
	// when the path is already taken. It returns the path actually used.
	Create(path string, content string) (string, error)
}

// Dir is a filesystem-backed Vault rooted at a directory.
type Dir struct {
	root string
}

// NewDir opens a directory as a vault, creating it if missing.
func NewDir(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Internal(fmt.Sprintf("failed to open vault at %s", root)).WithCause(err)
	}
	return &Dir{root: root}, nil
}

// Root returns the vault's base directory.
func (d *Dir) Root() string {
	return d.root
}

func (d *Dir) resolve(path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", errors.InvalidInput("path", "must be relative to the vault root")
	}
	return filepath.Join(d.root, cleaned), nil
}

func (d *Dir) Read(path string) (string, error) {
	full, err := d.resolve(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.NotFound("note", path)
		}
		return "", errors.Internal(fmt.Sprintf("failed to read note %s", path)).WithCause(err)
	}
	return string(data), nil
}

func (d *Dir) Write(path string, content string) error {
	full, err := d.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errors.Internal(fmt.Sprintf("failed to create directory for %s", path)).WithCause(err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		return errors.Internal(fmt.Sprintf("failed to write note %s", path)).WithCause(err)
	}
	return nil
}

func (d *Dir) Exists(path string) bool {
	full, err := d.resolve(path)
	if err != nil {
		return false
	}
	_, statErr := os.Stat(full)
	return statErr == nil
}

func (d *Dir) Create(path string, content string) (string, error) {
	candidate := path
	for i := 1; d.Exists(candidate); i++ {
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		candidate = fmt.Sprintf("%s %d%s", base, i, ext)
	}
	if err := d.Write(candidate, content); err != nil {
		return "", err
	}
	return candidate, nil
}
