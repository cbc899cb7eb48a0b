package report

import (
	"context"
	"time"

	"github.com/jhoicas/customer-portal/internal/domain/document"
)

// DocumentRenderer convierte un documento declarativo en un artefacto binario.
// Debe fallar si el árbol está mal formado (filas de distinto ancho, estilos inexistentes).
type DocumentRenderer interface {
	Render(ctx context.Context, doc document.Document) (RenderedArtifact, error)
}

// RenderedArtifact resultado del renderer: se abre en un visor o se guarda con nombre.
type RenderedArtifact interface {
	Open(ctx context.Context) error
	SaveAs(ctx context.Context, filename string) error
}

// Output destino final de los bytes de un artefacto (respuesta HTTP, archivo local, ...).
type Output interface {
	Preview(ctx context.Context, data []byte) error
	Save(ctx context.Context, filename string, data []byte) error
}

// Clock fuente de la hora actual.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapta una función a Clock.
type ClockFunc func() time.Time

// Now implementa Clock.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reloj real.
var SystemClock Clock = ClockFunc(time.Now)

// FixedClock reloj congelado, útil en tests y para reimpresiones reproducibles.
type FixedClock struct {
	At time.Time
}

// Now implementa Clock.
func (c FixedClock) Now() time.Time { return c.At }

// Logo imagen raster insertada en la cabecera de ambos reportes.
type Logo struct {
	Data   []byte
	Format string // "png" | "jpg"
}
