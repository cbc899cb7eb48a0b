// Package tokenstore persiste el token de acceso del CLI entre invocaciones.
package tokenstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/jhoicas/customer-portal/internal/application/session"
)

// AppName subdirectorio dentro de los directorios XDG.
const AppName = "customer-portal"

var _ session.TokenStore = (*File)(nil)

// File guarda el token en un archivo con permisos 0600.
type File struct {
	Path string
}

// DefaultPath $XDG_STATE_HOME/customer-portal/token.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, AppName, "token")
}

// NewFile store en path; vacío = DefaultPath().
func NewFile(path string) *File {
	if path == "" {
		path = DefaultPath()
	}
	return &File{Path: path}
}

// Load devuelve "" sin error si no hay sesión guardada.
func (f *File) Load() (string, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore: leer: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *File) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0o700); err != nil {
		return fmt.Errorf("tokenstore: crear directorio: %w", err)
	}
	if err := os.WriteFile(f.Path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("tokenstore: escribir: %w", err)
	}
	return nil
}

// Clear borra el token; no falla si ya no existía.
func (f *File) Clear() error {
	if err := os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("tokenstore: borrar: %w", err)
	}
	return nil
}
