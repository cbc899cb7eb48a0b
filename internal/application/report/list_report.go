package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/document"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

const (
	// ListReportTitle título del reporte tabular.
	ListReportTitle = "Customer Report"
	// ListFilename nombre fijo de descarga del reporte tabular.
	ListFilename = "customer_report.pdf"
	// NoDataMessage aviso cuando no hay registros que exportar.
	NoDataMessage = "No data available to export"
)

// ListColumns cabeceras del reporte tabular, en orden.
var ListColumns = []string{
	"Customer ID", "Name", "Registration Date", "Mobile", "Email", "Status", "Hold Since",
}

var listWidths = []document.Width{
	document.Fixed(80), document.Fixed(120), document.Fixed(100),
	document.Fixed(80), document.Fixed(120), document.Fixed(80), document.Fixed(80),
}

// Result resultado de ListReport.Print. NoData no es un error: el llamador
// debe mostrarlo como advertencia.
type Result struct {
	NoData  bool
	Message string
}

// ListReport genera el reporte horizontal de un conjunto filtrado de clientes.
type ListReport struct {
	renderer DocumentRenderer
	opts     Options
}

// NewListReport construye el builder.
func NewListReport(renderer DocumentRenderer, opts Options) *ListReport {
	return &ListReport{renderer: renderer, opts: opts.withDefaults()}
}

// Print renderiza el listado. Con cero registros devuelve Result.NoData sin
// tocar el renderer ni el reloj.
func (r *ListReport) Print(ctx context.Context, customers []entity.Customer, preview bool) (Result, error) {
	if len(customers) == 0 {
		return Result{NoData: true, Message: NoDataMessage}, nil
	}

	artifact, err := r.renderer.Render(ctx, r.Document(customers))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", domain.ErrRenderFailure, err)
	}
	if preview {
		err = artifact.Open(ctx)
	} else {
		err = artifact.SaveAs(ctx, ListFilename)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", domain.ErrRenderFailure, err)
	}
	return Result{}, nil
}

// Document arma el árbol del reporte tabular.
func (r *ListReport) Document(customers []entity.Customer) document.Document {
	s := r.opts.Style
	stamp := NewStamp(r.opts.Clock.Now(), r.opts.Offset)

	content := logoBlock(r.opts.Logo)
	content = append(content,
		titleBlock(ListReportTitle, s),
		listTable(customers, s),
		ruleBlock(s),
		labelValue("Printed on:", stamp.String(), 5),
	)

	return document.Document{
		Page: document.Page{
			Size:        "A4",
			Orientation: document.Landscape,
			Margins:     document.Margins{Left: 14, Top: 10, Right: 14, Bottom: 10},
			Background:  s.ListBackground,
		},
		Content: content,
		Styles:  s.Registry(),
	}
}

// ListRow valores de una fila en el orden de ListColumns, ya normalizados.
func ListRow(c entity.Customer) []string {
	return []string{
		orDash(c.CustomerID),
		orDash(c.Fullname),
		orDash(c.RegDate),
		orDash(c.Mobile),
		orDash(c.Email),
		orDash(c.Status),
		orDash(c.HoldSince),
	}
}

func listTable(customers []entity.Customer, s StyleConfig) document.Table {
	rules := ListFillRules(s)

	rows := make([][]document.Cell, 0, len(customers)+1)
	fills := make([]document.Color, 0, len(customers)+1)

	rows = append(rows, cells(StyleTableHeader, ListColumns...))
	fills = append(fills, RowFill(rules, 0, entity.Customer{}))
	for i, c := range customers {
		rows = append(rows, cells(StyleTableValue, ListRow(c)...))
		fills = append(fills, RowFill(rules, i+1, c))
	}

	widths := make([]document.Width, len(listWidths))
	copy(widths, listWidths)

	return document.Table{
		Widths:     widths,
		HeaderRows: 1,
		Rows:       rows,
		Fills:      fills,
		Layout:     s.tableLayout(),
		Margin:     document.Margins{Bottom: 20},
	}
}
