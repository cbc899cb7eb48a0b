package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/application/report"
	"github.com/jhoicas/customer-portal/pkg/logger"
)

// Tipos de reporte para métricas y logs.
const (
	ReportKindCustomer = "customer"
	ReportKindList     = "list"
)

// Resultados de una generación para ReportMetrics.
const (
	ReportOK     = "ok"
	ReportNoData = "no_data"
	ReportError  = "error"
)

// RendererFactory crea un renderer que entrega en out. Cada petición trae su
// propio destino (respuesta HTTP, archivo local).
type RendererFactory func(out report.Output) report.DocumentRenderer

// ReportMetrics puerto de métricas de reportes.
type ReportMetrics interface {
	ObserveReport(kind, outcome string, d time.Duration)
}

type nopMetrics struct{}

func (nopMetrics) ObserveReport(string, string, time.Duration) {}

// ReportUseCase obtiene los clientes y genera los PDFs.
type ReportUseCase struct {
	customers   *CustomerUseCase
	newRenderer RendererFactory
	opts        report.Options
	metrics     ReportMetrics
	log         *logger.Logger
}

// NewReportUseCase construye el caso de uso. metrics y log pueden ser nil.
func NewReportUseCase(customers *CustomerUseCase, newRenderer RendererFactory, opts report.Options, metrics ReportMetrics, log *logger.Logger) *ReportUseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if log == nil {
		log = logger.Nop()
	}
	return &ReportUseCase{
		customers:   customers,
		newRenderer: newRenderer,
		opts:        opts,
		metrics:     metrics,
		log:         log,
	}
}

// PrintCustomer genera el reporte individual del cliente customerID.
func (uc *ReportUseCase) PrintCustomer(ctx context.Context, customerID string, out report.Output, preview bool) error {
	start := time.Now()
	c, err := uc.customers.Get(ctx, customerID)
	if err != nil {
		uc.observe(ReportKindCustomer, ReportError, start, err)
		return err
	}

	b := report.NewCustomerReport(uc.newRenderer(out), uc.opts)
	if err := b.Print(ctx, *c, preview); err != nil {
		uc.observe(ReportKindCustomer, ReportError, start, err)
		return err
	}
	uc.observe(ReportKindCustomer, ReportOK, start, nil)
	uc.log.Info().
		Str("customer_id", c.CustomerID).
		Bool("preview", preview).
		Str("filename", report.CustomerFilename(c.CustomerID)).
		Msg("reporte de cliente generado")
	return nil
}

// PrintFilter genera el reporte tabular con los clientes que cumplen el filtro.
// Sin resultados devuelve Result.NoData y no genera nada.
func (uc *ReportUseCase) PrintFilter(ctx context.Context, in dto.CustomerFilterRequest, out report.Output, preview bool) (report.Result, error) {
	start := time.Now()
	list, err := uc.customers.Filter(ctx, in)
	if err != nil {
		uc.observe(ReportKindList, ReportError, start, err)
		return report.Result{}, err
	}

	b := report.NewListReport(uc.newRenderer(out), uc.opts)
	res, err := b.Print(ctx, list, preview)
	if err != nil {
		uc.observe(ReportKindList, ReportError, start, err)
		return report.Result{}, err
	}
	if res.NoData {
		uc.observe(ReportKindList, ReportNoData, start, nil)
		uc.log.Warn().Msg(res.Message)
		return res, nil
	}
	uc.observe(ReportKindList, ReportOK, start, nil)
	uc.log.Info().Int("rows", len(list)).Bool("preview", preview).Msg("reporte tabular generado")
	return res, nil
}

func (uc *ReportUseCase) observe(kind, outcome string, start time.Time, err error) {
	uc.metrics.ObserveReport(kind, outcome, time.Since(start))
	if err != nil && !errors.Is(err, context.Canceled) {
		uc.log.Error().Err(err).Str("kind", kind).Msg("fallo al generar reporte")
	}
}
