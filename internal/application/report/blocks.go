package report

import (
	"time"

	"github.com/jhoicas/customer-portal/internal/domain/document"
)

// Placeholder valor impreso para cualquier campo vacío.
const Placeholder = "-"

const (
	logoSize    = 120
	footerLabel = 100
)

// Options dependencias comunes de ambos builders.
type Options struct {
	Style  StyleConfig
	Clock  Clock
	Logo   Logo
	Offset time.Duration // 0 = UTC; DefaultOptions usa DefaultOffset
}

// DefaultOptions paleta por defecto, reloj del sistema y hora IST.
func DefaultOptions(logo Logo) Options {
	return Options{
		Style:  DefaultStyleConfig(),
		Clock:  SystemClock,
		Logo:   logo,
		Offset: DefaultOffset,
	}
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = SystemClock
	}
	if o.Style == (StyleConfig{}) {
		o.Style = DefaultStyleConfig()
	}
	return o
}

// orDash normaliza todos los campos opcionales al construir celdas.
func orDash(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func logoBlock(l Logo) []document.Block {
	if len(l.Data) == 0 {
		return nil
	}
	return []document.Block{document.Image{
		Data:   l.Data,
		Format: l.Format,
		Width:  logoSize,
		Height: logoSize,
		Align:  document.AlignCenter,
		Margin: document.Margins{Bottom: 30},
	}}
}

func titleBlock(title string, s StyleConfig) document.Block {
	return document.Text{
		Value:          title,
		Style:          StyleTitle,
		Margin:         document.Margins{Top: 20, Bottom: 10},
		Underline:      true,
		UnderlineColor: s.Primary,
	}
}

func ruleBlock(s StyleConfig) document.Block {
	return document.Line{
		Thickness: s.LineWidth,
		Color:     s.Primary,
		Margin:    document.Margins{Left: 14, Bottom: 10},
	}
}

func labelValue(label, value string, bottom float64) document.Block {
	return document.Columns{
		Items: []document.Column{
			{Text: label, Style: StyleFooterBold, Width: footerLabel},
			{Text: value, Style: StyleFooterNormal},
		},
		Margin: document.Margins{Left: 14, Bottom: bottom},
	}
}

func cells(style string, values ...string) []document.Cell {
	out := make([]document.Cell, len(values))
	for i, v := range values {
		out[i] = document.Cell{Text: v, Style: style}
	}
	return out
}
