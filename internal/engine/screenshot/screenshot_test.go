package screenshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromGLFlipsRows(t *testing.T) {
	// 1x2: bottom row red, top row blue
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromGL(pixels, 1, 2)
	require.NoError(t, err)

	top := img.RGBAAt(0, 0)
	bottom := img.RGBAAt(0, 1)
	assert.Equal(t, uint8(255), top.B)
	assert.Equal(t, uint8(255), bottom.R)
}

func TestFromGLRejectsBadInput(t *testing.T) {
	_, err := FromGL(make([]byte, 3), 1, 1)
	assert.Error(t, err)

	_, err = FromGL(nil, 0, 0)
	assert.Error(t, err)
}

func TestSaveWritesPNG(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := New(dir, "planet")
	c.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	path, err := c.Save(make([]byte, 4*3*2), 3, 2)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "planet_2024-03-01_12-30-00.000.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
}
