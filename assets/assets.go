// Package assets recursos embebidos en el binario.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/customer-portal/internal/application/report"
)

//go:embed logo.png
var logoPNG []byte

// DefaultLogo logo embebido de la cabecera de los reportes.
func DefaultLogo() report.Logo {
	return report.Logo{Data: logoPNG, Format: "png"}
}

// LoadLogo lee el logo desde path; vacío = DefaultLogo.
func LoadLogo(path string) (report.Logo, error) {
	if path == "" {
		return DefaultLogo(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return report.Logo{}, fmt.Errorf("assets: leer logo: %w", err)
	}
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case "png", "jpg", "jpeg":
	default:
		return report.Logo{}, fmt.Errorf("assets: formato de logo %q no soportado", format)
	}
	return report.Logo{Data: data, Format: format}, nil
}
