// Package output implementa report.Output: en memoria (respuestas HTTP) y en
// disco (CLI).
package output

import (
	"context"

	"github.com/jhoicas/customer-portal/internal/application/report"
)

var (
	_ report.Output = (*Capture)(nil)
	_ report.Output = (*Files)(nil)
)

// Capture retiene el PDF entregado para que el handler HTTP lo escriba en la
// respuesta. Inline indica visualización (preview) en lugar de descarga.
type Capture struct {
	Data      []byte
	Filename  string
	Inline    bool
	Delivered bool
}

// Preview implementa report.Output.
func (c *Capture) Preview(_ context.Context, data []byte) error {
	c.Data, c.Inline, c.Delivered = data, true, true
	return nil
}

// Save implementa report.Output.
func (c *Capture) Save(_ context.Context, filename string, data []byte) error {
	c.Data, c.Filename, c.Inline, c.Delivered = data, filename, false, true
	return nil
}
