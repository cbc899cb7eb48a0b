// Package pdf implementa report.DocumentRenderer con Maroto v2.
//
// El árbol document.Document llega en puntos tipográficos; Maroto trabaja en
// milímetros sobre una grilla de columnas. La traducción es:
//
//	┌───────────────────────────────────────────────────────────┐
//	│  Image    → fila de alto fijo con la imagen centrada       │
//	│  Text     → [espacio] fila de texto [subrayado] [espacio]  │
//	│  Table    → una fila Maroto por fila, celdas con borde     │
//	│  Line     → fila con línea horizontal                      │
//	│  Columns  → fila con una columna por ítem                  │
//	└───────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"errors"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/customer-portal/internal/application/report"
	"github.com/jhoicas/customer-portal/internal/domain/document"
)

// Verificar en tiempo de compilación que Renderer implementa DocumentRenderer.
var _ report.DocumentRenderer = (*Renderer)(nil)

// ErrNoOutput el artefacto no tiene destino configurado.
var ErrNoOutput = errors.New("pdf: artefacto sin destino de salida")

const (
	gridSize   = 100
	ptToMM     = 0.352778
	lineFactor = 1.25
	a4ShortMM  = 210.0
	a4LongMM   = 297.0
)

// Renderer genera PDFs con Maroto y entrega los bytes a un report.Output.
type Renderer struct {
	out    report.Output
	author string
}

// NewRenderer construye el renderer. author se guarda en los metadatos del PDF.
func NewRenderer(out report.Output, author string) *Renderer {
	return &Renderer{out: out, author: author}
}

// Render valida el árbol y genera el PDF. No reintenta.
func (r *Renderer) Render(ctx context.Context, doc document.Document) (report.RenderedArtifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := Generate(doc, r.author)
	if err != nil {
		return nil, err
	}
	return &Artifact{data: data, out: r.out}, nil
}

// Artifact PDF ya generado.
type Artifact struct {
	data []byte
	out  report.Output
}

// Bytes contenido del PDF.
func (a *Artifact) Bytes() []byte { return a.data }

// Open entrega el PDF para visualización.
func (a *Artifact) Open(ctx context.Context) error {
	if a.out == nil {
		return ErrNoOutput
	}
	return a.out.Preview(ctx, a.data)
}

// SaveAs entrega el PDF para descarga con el nombre indicado.
func (a *Artifact) SaveAs(ctx context.Context, filename string) error {
	if a.out == nil {
		return ErrNoOutput
	}
	return a.out.Save(ctx, filename, a.data)
}

// Generate valida doc y devuelve los bytes del PDF.
func Generate(doc document.Document, author string) ([]byte, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}

	page := newPageGeometry(doc.Page)
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(page.margins.Left).WithRightMargin(page.margins.Right).
		WithTopMargin(page.margins.Top).WithBottomMargin(page.margins.Bottom).
		WithMaxGridSize(gridSize).
		WithDefaultFont(&props.Font{Family: fontfamily.Helvetica, Size: 10})
	if doc.Page.Orientation == document.Landscape {
		b = b.WithOrientation(orientation.Horizontal)
	}
	if author != "" {
		b = b.WithAuthor(author, true)
	}
	if doc.Page.Background != document.None {
		bg, err := solidPNG(doc.Page.Background)
		if err != nil {
			return nil, fmt.Errorf("pdf: fondo de página: %w", err)
		}
		b = b.WithBackgroundImage(bg, extension.Png)
	}

	m := maroto.New(b.Build())
	for _, block := range doc.Content {
		m.AddRows(blockRows(block, doc.Styles, page)...)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Geometría ─────────────────────────────────────────────────────────────────

type pageGeometry struct {
	margins document.Margins // mm
	width   float64          // ancho útil en mm
}

func newPageGeometry(p document.Page) pageGeometry {
	w := a4ShortMM
	if p.Orientation == document.Landscape {
		w = a4LongMM
	}
	m := document.Margins{
		Left:   mm(p.Margins.Left),
		Top:    mm(p.Margins.Top),
		Right:  mm(p.Margins.Right),
		Bottom: mm(p.Margins.Bottom),
	}
	return pageGeometry{margins: m, width: w - m.Left - m.Right}
}

func mm(pt float64) float64 { return pt * ptToMM }

// ── Bloques ───────────────────────────────────────────────────────────────────

func blockRows(b document.Block, styles document.StyleRegistry, page pageGeometry) []core.Row {
	switch v := b.(type) {
	case document.Image:
		return imageRows(v)
	case document.Text:
		return textRows(v, styles)
	case document.Table:
		return tableRows(v, styles, page)
	case document.Line:
		return lineRows(v, page)
	case document.Columns:
		return columnsRows(v, styles, page)
	}
	return nil
}

func spacer(pt float64) []core.Row {
	if pt <= 0 {
		return nil
	}
	return []core.Row{row.New(mm(pt))}
}

func imageRows(img document.Image) []core.Row {
	rows := spacer(img.Margin.Top)
	rows = append(rows, row.New(mm(img.Height)).Add(
		col.New(gridSize).Add(image.NewFromBytes(img.Data, imageExtension(img.Format), props.Rect{
			Center:  img.Align == document.AlignCenter,
			Percent: 100,
		})),
	))
	return append(rows, spacer(img.Margin.Bottom)...)
}

func textRows(t document.Text, styles document.StyleRegistry) []core.Row {
	st := styles[t.Style]
	rows := spacer(t.Margin.Top)
	rows = append(rows, row.New(lineHeight(st.FontSize)).Add(
		col.New(gridSize).Add(text.New(t.Value, textProps(st, mm(t.Margin.Left), 0))),
	))
	if t.Underline {
		c := st.Color
		if t.UnderlineColor != document.None {
			c = t.UnderlineColor
		}
		rows = append(rows, line.NewRow(1, props.Line{
			Color:       toColor(c),
			Thickness:   0.3,
			SizePercent: 40,
		}))
	}
	return append(rows, spacer(t.Margin.Bottom)...)
}

func lineRows(l document.Line, page pageGeometry) []core.Row {
	h := mm(l.Margin.Bottom)
	if h < 1 {
		h = 1
	}
	p := props.Line{
		Color:     toColor(l.Color),
		Thickness: mm(l.Thickness),
	}
	rows := spacer(l.Margin.Top)
	if l.Margin.Left <= 0 && l.Margin.Right <= 0 {
		return append(rows, line.NewRow(h, p))
	}

	// sangrías como columnas vacías a cada lado
	widths := []document.Width{document.Star()}
	body := 0
	if l.Margin.Left > 0 {
		widths = append([]document.Width{document.Fixed(l.Margin.Left)}, widths...)
		body = 1
	}
	if l.Margin.Right > 0 {
		widths = append(widths, document.Fixed(l.Margin.Right))
	}
	sizes := gridSizes(widths, page.width/ptToMM)
	cols := make([]core.Col, len(sizes))
	for i, size := range sizes {
		cols[i] = col.New(size)
		if i == body {
			cols[i] = cols[i].Add(line.New(p))
		}
	}
	return append(rows, row.New(h).Add(cols...))
}

func columnsRows(c document.Columns, styles document.StyleRegistry, page pageGeometry) []core.Row {
	// la sangría izquierda ocupa su propia columna vacía
	widths := make([]document.Width, 0, len(c.Items)+1)
	if c.Margin.Left > 0 {
		widths = append(widths, document.Fixed(c.Margin.Left))
	}
	height := 0.0
	for _, it := range c.Items {
		if it.Width > 0 {
			widths = append(widths, document.Fixed(it.Width))
		} else {
			widths = append(widths, document.Star())
		}
		if h := lineHeight(styles[it.Style].FontSize); h > height {
			height = h
		}
	}
	sizes := gridSizes(widths, page.width/ptToMM)

	cols := make([]core.Col, 0, len(widths))
	if c.Margin.Left > 0 {
		cols = append(cols, col.New(sizes[0]))
		sizes = sizes[1:]
	}
	for i, it := range c.Items {
		cols = append(cols, col.New(sizes[i]).Add(text.New(it.Text, textProps(styles[it.Style], 0, 0))))
	}

	rows := spacer(c.Margin.Top)
	rows = append(rows, row.New(height).Add(cols...))
	return append(rows, spacer(c.Margin.Bottom)...)
}

// ── Tabla ─────────────────────────────────────────────────────────────────────

func tableRows(t document.Table, styles document.StyleRegistry, page pageGeometry) []core.Row {
	sizes := gridSizes(t.Widths, page.width/ptToMM)
	lineColor := toColor(t.Layout.LineColor)
	padX, padY := mm(t.Layout.PaddingX), mm(t.Layout.PaddingY)

	rows := spacer(t.Margin.Top)
	for i, cells := range t.Rows {
		fill := document.None
		if i < len(t.Fills) {
			fill = t.Fills[i]
		}

		height := 0.0
		cols := make([]core.Col, len(cells))
		for j, cell := range cells {
			st := styles[cell.Style]
			bg := fill
			if bg == document.None {
				bg = st.Fill
			}
			colWidth := page.width * float64(sizes[j]) / gridSize
			if h := cellHeight(cell.Text, st.FontSize, colWidth-2*padX) + 2*padY; h > height {
				height = h
			}
			cols[j] = col.New(sizes[j]).
				Add(text.New(cell.Text, textProps(st, padX, padY))).
				WithStyle(&props.Cell{
					BackgroundColor: toColor(bg),
					BorderType:      border.Full,
					BorderColor:     lineColor,
					BorderThickness: mm(t.Layout.LineWidth),
				})
		}
		rows = append(rows, row.New(height).Add(cols...))
	}
	return append(rows, spacer(t.Margin.Bottom)...)
}

// gridSizes reparte gridSize columnas según los anchos. Los anchos fijos se
// escalan si no caben; los Star se reparten el resto. Cada columna recibe al
// menos 1 y la suma es exactamente gridSize.
func gridSizes(widths []document.Width, available float64) []int {
	fixed, stars := 0.0, 0
	for _, w := range widths {
		if w.Star {
			stars++
		} else {
			fixed += w.Points
		}
	}

	total := available
	if fixed > available || stars == 0 {
		total = fixed
	}
	rest := 0.0
	if stars > 0 && total > fixed {
		rest = (total - fixed) / float64(stars)
	}

	shares := make([]float64, len(widths))
	for i, w := range widths {
		pt := w.Points
		if w.Star {
			pt = rest
		}
		shares[i] = pt / total * gridSize
	}
	return roundShares(shares)
}

// roundShares redondeo por mayor resto: la suma se conserva.
func roundShares(shares []float64) []int {
	out := make([]int, len(shares))
	sum := 0
	for i, s := range shares {
		out[i] = int(s)
		if out[i] < 1 {
			out[i] = 1
		}
		sum += out[i]
	}
	for sum < gridSize {
		best, bestFrac := 0, -1.0
		for i, s := range shares {
			if frac := s - float64(out[i]); frac > bestFrac {
				best, bestFrac = i, frac
			}
		}
		out[best]++
		sum++
	}
	for sum > gridSize {
		best := 0
		for i := range out {
			if out[i] > out[best] {
				best = i
			}
		}
		out[best]--
		sum--
	}
	return out
}

// ── Texto ─────────────────────────────────────────────────────────────────────

func lineHeight(fontSize float64) float64 {
	return mm(fontSize * lineFactor)
}

// cellHeight estima el alto del texto envuelto en un ancho dado (mm).
// Helvetica promedia ~0.5 em por carácter.
func cellHeight(s string, fontSize, width float64) float64 {
	lines := 1
	if width > 0 {
		textWidth := float64(len([]rune(s))) * mm(fontSize) * 0.5
		for textWidth > width*float64(lines) {
			lines++
		}
	}
	return float64(lines) * lineHeight(fontSize)
}

func textProps(st document.Style, left, top float64) props.Text {
	return props.Text{
		Size:  st.FontSize,
		Style: fontStyle(st),
		Color: toColor(st.Color),
		Align: textAlign(st.Align),
		Left:  left,
		Right: left,
		Top:   top,
	}
}
