package report

import "github.com/jhoicas/customer-portal/internal/domain/document"

// Nombres de estilo registrados en cada documento.
const (
	StyleTitle        = "title"
	StyleTableHeader  = "tableHeader"
	StyleTableField   = "tableField"
	StyleTableValue   = "tableValue"
	StyleFooterBold   = "footerBold"
	StyleFooterNormal = "footerNormal"
)

// StyleConfig paleta y tipografía compartida por ambos reportes.
// Es un valor inmutable: se inyecta al construir cada builder.
type StyleConfig struct {
	Primary        document.Color // títulos, etiquetas, bordes
	Accent         document.Color // relleno de cabecera
	HeaderText     document.Color
	Text           document.Color
	Zebra          document.Color // filas impares
	Hold           document.Color
	Closed         document.Color
	ListBackground document.Color // fondo de página del reporte tabular

	TitleSize       float64
	TableSize       float64
	FooterLabelSize float64
	FooterValueSize float64
	LetterSpacing   float64

	LineWidth    float64
	CellPaddingX float64
	CellPaddingY float64
}

// DefaultStyleConfig paleta corporativa original.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		Primary:         "#0f3d3e",
		Accent:          "#1a6b6c",
		HeaderText:      "#ffffff",
		Text:            "#000000",
		Zebra:           "#f8fafc",
		Hold:            "#fff3cd",
		Closed:          "#f8d7da",
		ListBackground:  "#f9fbfc",
		TitleSize:       18,
		TableSize:       12,
		FooterLabelSize: 13,
		FooterValueSize: 11,
		LetterSpacing:   1.2,
		LineWidth:       0.5,
		CellPaddingX:    8,
		CellPaddingY:    5,
	}
}

// Registry construye un registro de estilos nuevo en cada llamada.
func (s StyleConfig) Registry() document.StyleRegistry {
	return document.StyleRegistry{
		StyleTitle: {
			FontSize: s.TitleSize, Bold: true, Color: s.Primary,
			Align: document.AlignCenter, LetterSpacing: s.LetterSpacing,
		},
		StyleTableHeader:  {FontSize: s.TableSize, Bold: true, Color: s.HeaderText, Fill: s.Accent},
		StyleTableField:   {FontSize: s.TableSize, Bold: true, Color: s.Primary},
		StyleTableValue:   {FontSize: s.TableSize, Color: s.Text},
		StyleFooterBold:   {FontSize: s.FooterLabelSize, Bold: true, Color: s.Primary},
		StyleFooterNormal: {FontSize: s.FooterValueSize, Italic: true, Color: s.Text},
	}
}

func (s StyleConfig) tableLayout() document.TableLayout {
	return document.TableLayout{
		LineColor: s.Primary,
		LineWidth: s.LineWidth,
		PaddingX:  s.CellPaddingX,
		PaddingY:  s.CellPaddingY,
	}
}
