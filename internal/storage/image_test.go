package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngImage(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.Set(x, 0, color.RGBA{R: uint8(x % 256), A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestEncodeWebP(t *testing.T) {
	out, err := EncodeWebP(pngImage(t, 64, 48))
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	// WebP files are RIFF containers.
	assert.Equal(t, "RIFF", string(out[:4]))
	assert.Equal(t, "WEBP", string(out[8:12]))
}

func TestEncodeWebPRejectsGarbage(t *testing.T) {
	_, err := EncodeWebP(strings.NewReader("not an image"))
	assert.Error(t, err)
}

func TestScaleDown(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"small stays untouched", 640, 480, 640, 480},
		{"exactly at limit", 1024, 1024, 1024, 1024},
		{"wide landscape", 2048, 512, 1024, 256},
		{"tall portrait", 500, 2000, 256, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := scaleDown(src, 1024)

			assert.Equal(t, tt.wantW, got.Bounds().Dx())
			assert.Equal(t, tt.wantH, got.Bounds().Dy())
		})
	}
}
