package output_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/internal/infrastructure/output"
)

func TestCapture_PreviewYSave(t *testing.T) {
	var c output.Capture
	require.NoError(t, c.Preview(context.Background(), []byte("%PDF-a")))
	assert.True(t, c.Inline)
	assert.True(t, c.Delivered)
	assert.Empty(t, c.Filename)

	require.NoError(t, c.Save(context.Background(), "customer_ARC001.pdf", []byte("%PDF-b")))
	assert.False(t, c.Inline)
	assert.Equal(t, "customer_ARC001.pdf", c.Filename)
	assert.Equal(t, []byte("%PDF-b"), c.Data)
}

func TestFiles_SaveEscribeEnDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "descargas")
	f := &output.Files{Dir: dir}

	require.NoError(t, f.Save(context.Background(), "../customer_report.pdf", []byte("%PDF")))

	got, err := os.ReadFile(filepath.Join(dir, "customer_report.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), got)
	assert.Equal(t, filepath.Join(dir, "customer_report.pdf"), f.Saved())
}

func TestFiles_SavedVacioSinGuardar(t *testing.T) {
	f := &output.Files{Dir: t.TempDir()}
	assert.Empty(t, f.Saved())
}

func TestFiles_PreviewLanzaVisor(t *testing.T) {
	var viewer, opened string
	f := &output.Files{
		Viewer: "mi-visor",
		Launch: func(_ context.Context, v, path string) error {
			viewer, opened = v, path
			return nil
		},
	}

	require.NoError(t, f.Preview(context.Background(), []byte("%PDF")))
	t.Cleanup(func() { _ = os.Remove(opened) })

	assert.Equal(t, "mi-visor", viewer)
	data, err := os.ReadFile(opened)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}
