package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/customer-portal/internal/domain/document"
)

// ErrInvalidDocument el árbol no se puede renderizar tal como está.
var ErrInvalidDocument = errors.New("pdf: documento inválido")

// Validate revisa el árbol antes de entregarlo a Maroto:
//   - página A4 en orientación conocida y fondo con color válido;
//   - toda referencia de estilo existe en el registro;
//   - cada fila de tabla tiene tantas celdas como anchos declarados;
//   - las imágenes traen datos en un formato soportado.
func Validate(doc document.Document) error {
	if doc.Page.Size != "" && !strings.EqualFold(doc.Page.Size, "A4") {
		return fmt.Errorf("%w: tamaño de página %q no soportado", ErrInvalidDocument, doc.Page.Size)
	}
	switch doc.Page.Orientation {
	case "", document.Portrait, document.Landscape:
	default:
		return fmt.Errorf("%w: orientación %q", ErrInvalidDocument, doc.Page.Orientation)
	}
	if err := checkColor(doc.Page.Background); err != nil {
		return err
	}
	for name, st := range doc.Styles {
		if err := checkColor(st.Color); err != nil {
			return fmt.Errorf("estilo %q: %w", name, err)
		}
		if err := checkColor(st.Fill); err != nil {
			return fmt.Errorf("estilo %q: %w", name, err)
		}
	}

	for i, b := range doc.Content {
		if b == nil {
			return fmt.Errorf("%w: bloque %d nulo", ErrInvalidDocument, i)
		}
		if err := validateBlock(b, doc.Styles); err != nil {
			return fmt.Errorf("bloque %d (%s): %w", i, b.Kind(), err)
		}
	}
	return nil
}

func validateBlock(b document.Block, styles document.StyleRegistry) error {
	switch v := b.(type) {
	case document.Text:
		if err := checkStyle(styles, v.Style); err != nil {
			return err
		}
		return checkColor(v.UnderlineColor)
	case document.Image:
		if len(v.Data) == 0 {
			return fmt.Errorf("%w: imagen vacía", ErrInvalidDocument)
		}
		if _, ok := extensions[strings.ToLower(v.Format)]; !ok {
			return fmt.Errorf("%w: formato de imagen %q", ErrInvalidDocument, v.Format)
		}
		if v.Width <= 0 || v.Height <= 0 {
			return fmt.Errorf("%w: imagen sin dimensiones", ErrInvalidDocument)
		}
	case document.Table:
		return validateTable(v, styles)
	case document.Line:
		return checkColor(v.Color)
	case document.Columns:
		for _, it := range v.Items {
			if err := checkStyle(styles, it.Style); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateTable(t document.Table, styles document.StyleRegistry) error {
	n := t.ColumnCount()
	if n == 0 {
		return fmt.Errorf("%w: tabla sin columnas", ErrInvalidDocument)
	}
	if t.HeaderRows > len(t.Rows) {
		return fmt.Errorf("%w: %d filas de cabecera en una tabla de %d filas", ErrInvalidDocument, t.HeaderRows, len(t.Rows))
	}
	if len(t.Fills) != 0 && len(t.Fills) != len(t.Rows) {
		return fmt.Errorf("%w: %d rellenos para %d filas", ErrInvalidDocument, len(t.Fills), len(t.Rows))
	}
	for i, row := range t.Rows {
		if len(row) != n {
			return fmt.Errorf("%w: fila %d tiene %d celdas, se esperaban %d", ErrInvalidDocument, i, len(row), n)
		}
		for _, c := range row {
			if err := checkStyle(styles, c.Style); err != nil {
				return err
			}
		}
	}
	for _, f := range t.Fills {
		if err := checkColor(f); err != nil {
			return err
		}
	}
	return checkColor(t.Layout.LineColor)
}

func checkStyle(styles document.StyleRegistry, name string) error {
	if name == "" {
		return nil
	}
	if _, ok := styles[name]; !ok {
		return fmt.Errorf("%w: estilo %q no registrado", ErrInvalidDocument, name)
	}
	return nil
}

func checkColor(c document.Color) error {
	if c == document.None {
		return nil
	}
	if _, err := parseColor(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// ── Conversión a tipos Maroto ─────────────────────────────────────────────────

var extensions = map[string]extension.Type{
	"png":  extension.Png,
	"jpg":  extension.Jpg,
	"jpeg": extension.Jpg,
}

func imageExtension(format string) extension.Type {
	if ext, ok := extensions[strings.ToLower(format)]; ok {
		return ext
	}
	return extension.Png
}

func parseColor(c document.Color) (*props.Color, error) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("color %q: se espera #rrggbb", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("color %q: %w", s, err)
	}
	return &props.Color{Red: int(n>>16&0xff), Green: int(n>>8&0xff), Blue: int(n&0xff)}, nil
}

// toColor convierte un color ya validado; None → nil.
func toColor(c document.Color) *props.Color {
	if c == document.None {
		return nil
	}
	pc, _ := parseColor(c)
	return pc
}

func fontStyle(st document.Style) fontstyle.Type {
	switch {
	case st.Bold && st.Italic:
		return fontstyle.BoldItalic
	case st.Bold:
		return fontstyle.Bold
	case st.Italic:
		return fontstyle.Italic
	}
	return fontstyle.Normal
}

func textAlign(a document.Align) align.Type {
	switch a {
	case document.AlignCenter:
		return align.Center
	case document.AlignRight:
		return align.Right
	}
	return align.Left
}

// solidPNG imagen de un color para usar como fondo de página
// (Maroto solo acepta fondos como imagen).
func solidPNG(c document.Color) ([]byte, error) {
	pc, err := parseColor(c)
	if err != nil {
		return nil, err
	}
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fill := color.RGBA{R: uint8(pc.Red), G: uint8(pc.Green), B: uint8(pc.Blue), A: 0xff}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
