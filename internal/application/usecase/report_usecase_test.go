package usecase_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/application/report"
	"github.com/jhoicas/customer-portal/internal/application/usecase"
	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
	"github.com/jhoicas/customer-portal/internal/infrastructure/output"
	"github.com/jhoicas/customer-portal/internal/infrastructure/pdf"
)

func newReportUseCase(repo *fakeCustomerRepo, m *recordingMetrics) *usecase.ReportUseCase {
	opts := report.DefaultOptions(report.Logo{})
	opts.Clock = report.FixedClock{At: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)}
	factory := func(out report.Output) report.DocumentRenderer { return pdf.NewRenderer(out, "test") }
	return usecase.NewReportUseCase(usecase.NewCustomerUseCase(repo), factory, opts, m, nil)
}

func TestPrintCustomer_GuardaPDF(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[string]entity.Customer{
		"ARC7": {CustomerID: "ARC7", Fullname: "Asha Rao", Status: entity.StatusActive},
	}}
	m := &recordingMetrics{}
	capture := &output.Capture{}

	err := newReportUseCase(repo, m).PrintCustomer(context.Background(), "ARC7", capture, false)
	require.NoError(t, err)

	assert.Equal(t, "customer_ARC7.pdf", capture.Filename)
	assert.True(t, bytes.HasPrefix(capture.Data, []byte("%PDF")))
	assert.Equal(t, []string{"customer:ok"}, m.outcomes)
}

func TestPrintCustomer_NoEncontrado(t *testing.T) {
	m := &recordingMetrics{}
	capture := &output.Capture{}

	err := newReportUseCase(&fakeCustomerRepo{}, m).PrintCustomer(context.Background(), "X", capture, true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, capture.Delivered)
	assert.Equal(t, []string{"customer:error"}, m.outcomes)
}

func TestPrintFilter_SinDatos(t *testing.T) {
	m := &recordingMetrics{}
	capture := &output.Capture{}

	res, err := newReportUseCase(&fakeCustomerRepo{}, m).
		PrintFilter(context.Background(), dto.CustomerFilterRequest{Status: "hold"}, capture, false)
	require.NoError(t, err)

	assert.True(t, res.NoData)
	assert.Equal(t, report.NoDataMessage, res.Message)
	assert.False(t, capture.Delivered)
	assert.Equal(t, []string{"list:no_data"}, m.outcomes)
}

func TestPrintFilter_Preview(t *testing.T) {
	repo := &fakeCustomerRepo{filtered: []entity.Customer{
		{CustomerID: "A1", Status: entity.StatusHold},
		{CustomerID: "A2", Status: entity.StatusClosed},
	}}
	m := &recordingMetrics{}
	capture := &output.Capture{}

	res, err := newReportUseCase(repo, m).
		PrintFilter(context.Background(), dto.CustomerFilterRequest{}, capture, true)
	require.NoError(t, err)

	assert.False(t, res.NoData)
	assert.True(t, capture.Inline)
	assert.Equal(t, []string{"list:ok"}, m.outcomes)
}

func TestPrintFilter_FiltroInvalido(t *testing.T) {
	m := &recordingMetrics{}
	_, err := newReportUseCase(&fakeCustomerRepo{}, m).
		PrintFilter(context.Background(), dto.CustomerFilterRequest{DateFrom: "ayer"}, &output.Capture{}, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
