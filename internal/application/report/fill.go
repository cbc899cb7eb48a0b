package report

import (
	"github.com/jhoicas/customer-portal/internal/domain/document"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

// FillRule par (predicado, color). index es la posición de la fila en la
// tabla (0 = cabecera); c es el registro de esa fila (vacío en la cabecera).
type FillRule struct {
	Name    string
	Matches func(index int, c entity.Customer) bool
	Color   document.Color
}

// RowFill evalúa las reglas en orden y devuelve el color de la primera que
// coincide, o document.None si ninguna aplica.
func RowFill(rules []FillRule, index int, c entity.Customer) document.Color {
	for _, r := range rules {
		if r.Matches(index, c) {
			return r.Color
		}
	}
	return document.None
}

func isHeader(index int, _ entity.Customer) bool { return index == 0 }

func isOddRow(index int, _ entity.Customer) bool { return index%2 == 1 }

func hasStatus(status string) func(int, entity.Customer) bool {
	return func(index int, c entity.Customer) bool {
		return index > 0 && c.Status == status
	}
}

// zebraRules filas impares con relleno claro (reporte de un cliente).
func zebraRules(s StyleConfig) []FillRule {
	return []FillRule{
		{Name: "odd", Matches: isOddRow, Color: s.Zebra},
	}
}

// ListFillRules cadena de prioridad del reporte tabular: el estado siempre
// gana sobre la paridad.
func ListFillRules(s StyleConfig) []FillRule {
	return []FillRule{
		{Name: "header", Matches: isHeader, Color: s.Accent},
		{Name: "hold", Matches: hasStatus(entity.StatusHold), Color: s.Hold},
		{Name: "closed", Matches: hasStatus(entity.StatusClosed), Color: s.Closed},
		{Name: "odd", Matches: isOddRow, Color: s.Zebra},
	}
}
