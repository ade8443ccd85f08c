package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 30, G: 160, B: 60, A: 255})
		}
	}
	return img
}

func TestNormalizeJPEGConvertsPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))

	out, err := NormalizeJPEG(buf.Bytes())
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestNormalizeJPEGPassesThroughJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(), nil))

	out, err := NormalizeJPEG(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), out)
}

func TestNormalizeJPEGRejectsGarbage(t *testing.T) {
	_, err := NormalizeJPEG([]byte("not an image"))
	assert.Error(t, err)
}
