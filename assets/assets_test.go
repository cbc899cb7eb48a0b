package assets_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/assets"
)

func TestDefaultLogo_EsPNG(t *testing.T) {
	logo := assets.DefaultLogo()
	assert.Equal(t, "png", logo.Format)
	assert.True(t, bytes.HasPrefix(logo.Data, []byte("\x89PNG")))
}

func TestLoadLogo(t *testing.T) {
	logo, err := assets.LoadLogo("")
	require.NoError(t, err)
	assert.Equal(t, assets.DefaultLogo(), logo)

	path := filepath.Join(t.TempDir(), "marca.JPG")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xd8, 0xff}, 0o644))
	logo, err = assets.LoadLogo(path)
	require.NoError(t, err)
	assert.Equal(t, "jpg", logo.Format)

	_, err = assets.LoadLogo(filepath.Join(t.TempDir(), "logo.gif"))
	assert.Error(t, err)
}
