package report

import (
	"context"
	"fmt"

	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/document"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

// CustomerReportTitle título del reporte individual.
const CustomerReportTitle = "Customer Details"

// Declaration leyenda fija del pie del reporte individual.
const Declaration = "This is a computer-generated document. Please retain this for your records."

// CustomerReport genera la ficha imprimible (campo/valor) de un cliente.
type CustomerReport struct {
	renderer DocumentRenderer
	opts     Options
}

// NewCustomerReport construye el builder.
func NewCustomerReport(renderer DocumentRenderer, opts Options) *CustomerReport {
	return &CustomerReport{renderer: renderer, opts: opts.withDefaults()}
}

// CustomerFilename nombre de descarga: customer_<id>.pdf, o customer_NA.pdf sin id.
func CustomerFilename(customerID string) string {
	if customerID == "" {
		customerID = "NA"
	}
	return fmt.Sprintf("customer_%s.pdf", customerID)
}

// Print renderiza la ficha y la abre (preview) o la guarda con CustomerFilename.
func (r *CustomerReport) Print(ctx context.Context, c entity.Customer, preview bool) error {
	artifact, err := r.renderer.Render(ctx, r.Document(c))
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRenderFailure, err)
	}
	if preview {
		err = artifact.Open(ctx)
	} else {
		err = artifact.SaveAs(ctx, CustomerFilename(c.CustomerID))
	}
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrRenderFailure, err)
	}
	return nil
}

// Document arma el árbol del reporte. Solo depende del registro y del reloj.
func (r *CustomerReport) Document(c entity.Customer) document.Document {
	s := r.opts.Style
	stamp := NewStamp(r.opts.Clock.Now(), r.opts.Offset)

	content := logoBlock(r.opts.Logo)
	content = append(content,
		titleBlock(CustomerReportTitle, s),
		customerTable(c, s),
		ruleBlock(s),
		document.Text{Value: "Declaration:", Style: StyleFooterBold, Margin: document.Margins{Left: 14, Bottom: 5}},
		document.Text{Value: Declaration, Style: StyleFooterNormal, Margin: document.Margins{Left: 14, Bottom: 15}},
		labelValue("Printing Date:", stamp.Date, 5),
		labelValue("Printing Time:", stamp.Time, 5),
	)

	return document.Document{
		Page: document.Page{
			Size:        "A4",
			Orientation: document.Portrait,
			Margins:     document.Margins{Left: 50, Top: 45, Right: 50, Bottom: 45},
		},
		Content: content,
		Styles:  s.Registry(),
	}
}

// CustomerFields pares etiqueta/valor en el orden fijo de la ficha.
func CustomerFields(c entity.Customer) [][2]string {
	return [][2]string{
		{"Customer ID", c.CustomerID},
		{"Name", c.Fullname},
		{"Status", c.Status},
		{"Hold Since", c.HoldSince},
		{"Mobile", c.Mobile},
		{"Email", c.Email},
		{"Registration Date", c.RegDate},
		{"Address", c.Address},
		{"Remarks / Notes", c.Note},
	}
}

func customerTable(c entity.Customer, s StyleConfig) document.Table {
	fields := CustomerFields(c)
	rules := zebraRules(s)

	rows := make([][]document.Cell, 0, len(fields)+1)
	fills := make([]document.Color, 0, len(fields)+1)

	rows = append(rows, cells(StyleTableHeader, "Field", "Value"))
	fills = append(fills, document.None)
	for _, f := range fields {
		rows = append(rows, []document.Cell{
			{Text: f[0], Style: StyleTableField},
			{Text: orDash(f[1]), Style: StyleTableValue},
		})
		fills = append(fills, RowFill(rules, len(rows)-1, c))
	}

	return document.Table{
		Widths:     []document.Width{document.Fixed(120), document.Star()},
		HeaderRows: 1,
		Rows:       rows,
		Fills:      fills,
		Layout:     s.tableLayout(),
		Margin:     document.Margins{Bottom: 20},
	}
}
