package output

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/adrg/xdg"

	"github.com/jhoicas/customer-portal/pkg/logger"
)

// Launcher abre un archivo con un visor externo.
type Launcher func(ctx context.Context, viewer, path string) error

// Files guarda los PDFs en un directorio local y abre las vistas previas con
// el visor del sistema.
type Files struct {
	Dir    string // destino de SaveAs; vacío = carpeta de descargas XDG
	Viewer string // comando del visor; vacío = DefaultViewer()
	Launch Launcher
	Log    *logger.Logger

	saved string
}

// DefaultDir carpeta de descargas del usuario según XDG.
func DefaultDir() string {
	if xdg.UserDirs.Download != "" {
		return xdg.UserDirs.Download
	}
	return filepath.Join(xdg.Home, "Downloads")
}

// DefaultViewer comando para abrir archivos en la plataforma actual.
func DefaultViewer() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	}
	return "xdg-open"
}

// PathFor ruta final de filename dentro de Dir.
func (f *Files) PathFor(filename string) string {
	dir := f.Dir
	if dir == "" {
		dir = DefaultDir()
	}
	return filepath.Join(dir, filepath.Base(filename))
}

// Save escribe data en Dir/filename. Solo se usa el último elemento de filename.
func (f *Files) Save(_ context.Context, filename string, data []byte) error {
	path := f.PathFor(filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("output: crear directorio: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("output: escribir %s: %w", path, err)
	}
	f.saved = path
	f.logWritten(path, false)
	return nil
}

// Saved ruta del último archivo escrito por Save; vacío si no hubo ninguno.
func (f *Files) Saved() string { return f.saved }

// Preview escribe data en un temporal y lo abre con el visor.
func (f *Files) Preview(ctx context.Context, data []byte) error {
	tmp, err := os.CreateTemp("", "customer-portal-*.pdf")
	if err != nil {
		return fmt.Errorf("output: archivo temporal: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("output: escribir temporal: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("output: cerrar temporal: %w", err)
	}
	f.logWritten(tmp.Name(), true)

	viewer := f.Viewer
	if viewer == "" {
		viewer = DefaultViewer()
	}
	launch := f.Launch
	if launch == nil {
		launch = startViewer
	}
	if err := launch(ctx, viewer, tmp.Name()); err != nil {
		return fmt.Errorf("output: abrir visor %s: %w", viewer, err)
	}
	return nil
}

func (f *Files) logWritten(path string, preview bool) {
	if f.Log == nil {
		return
	}
	f.Log.Info().Str("path", path).Bool("preview", preview).Msg("pdf escrito")
}

// startViewer lanza el visor sin esperar a que termine. No se ata al contexto:
// el visor debe sobrevivir al comando que lo abrió.
func startViewer(_ context.Context, viewer, path string) error {
	cmd := exec.Command(viewer, path)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() { _ = cmd.Wait() }()
	return nil
}
