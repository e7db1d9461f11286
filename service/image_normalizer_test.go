package service

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/visa-document-scanner/dto"
)

func TestBinarize(t *testing.T) {
	n := NewImageNormalizer(2, 1.2, 128)

	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"white", 255, 255, 255, 255},
		{"black", 0, 0, 0, 0},
		{"mid gray stays below threshold", 128, 128, 128, 0},
		{"light gray", 140, 140, 140, 255},
		{"dark gray", 110, 110, 110, 0},
		{"pure red", 255, 0, 0, 0},
		{"pure green", 0, 255, 0, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.binarize(tt.r, tt.g, tt.b))
		})
	}
}

func TestNormalizeUpscalesAndBinarizes(t *testing.T) {
	n := NewImageNormalizer(2, 1.2, 128)
	src := uniformImage(5, 3, color.RGBA{R: 200, G: 200, B: 200, A: 255})

	out, err := n.Normalize(src)
	require.NoError(t, err)

	assert.Equal(t, 10, out.Bounds().Dx())
	assert.Equal(t, 6, out.Bounds().Dy())
	for y := 0; y < 6; y++ {
		for x := 0; x < 10; x++ {
			c := out.NRGBAAt(x, y)
			assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c)
		}
	}

	// Source untouched.
	assert.Equal(t, color.RGBA{R: 200, G: 200, B: 200, A: 255}, src.RGBAAt(0, 0))
}

func TestNormalizeKeepsAlpha(t *testing.T) {
	n := NewImageNormalizer(1, 1.2, 128)
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 250, G: 250, B: 250, A: 90})
	src.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 10, B: 10, A: 255})

	out, err := n.Normalize(src)
	require.NoError(t, err)

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 90}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 0, G: 0, B: 0, A: 255}, out.NRGBAAt(1, 0))
}

func TestNormalizeEmptyImage(t *testing.T) {
	n := NewImageNormalizer(2, 1.2, 128)

	_, err := n.Normalize(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.ErrorIs(t, err, errEmptyImage)

	var scanErr *dto.ScanError
	require.ErrorAs(t, err, &scanErr)
	assert.Equal(t, dto.StageNormalize, scanErr.Stage)
}
