package service

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/Aashish23092/visa-document-scanner/dto"
)

var (
	errEmptyImage    = errors.New("image has no pixels")
	errNormalization = errors.New("image normalization failed")
)

// Normalizer transforms a decoded bitmap into one better suited to OCR.
// Failures are not fatal: the scanner recognizes the original instead.
type Normalizer interface {
	Normalize(src image.Image) (*image.NRGBA, error)
}

// ImageNormalizer prepares a bitmap for OCR: upscale, grayscale, contrast
// stretch around mid-gray and a hard binary threshold.
type ImageNormalizer struct {
	upscale   int
	contrast  float64
	threshold int
}

func NewImageNormalizer(upscale int, contrast float64, threshold int) *ImageNormalizer {
	if upscale < 1 {
		upscale = 1
	}
	return &ImageNormalizer{
		upscale:   upscale,
		contrast:  contrast,
		threshold: threshold,
	}
}

// Normalize returns a new image; src is not modified. Alpha is carried over
// unchanged. A panic inside the imaging pipeline is returned as an error so
// the caller can fall back to the original bitmap.
func (n *ImageNormalizer) Normalize(src image.Image) (out *image.NRGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = nil
			err = dto.NewScanError(dto.StageNormalize, errNormalization, fmt.Sprint(r))
		}
	}()

	b := src.Bounds()
	if b.Empty() {
		return nil, dto.NewScanError(dto.StageNormalize, errEmptyImage, "")
	}

	resized := imaging.Resize(src, b.Dx()*n.upscale, b.Dy()*n.upscale, imaging.Lanczos)

	return imaging.AdjustFunc(resized, func(c color.NRGBA) color.NRGBA {
		v := n.binarize(c.R, c.G, c.B)
		return color.NRGBA{R: v, G: v, B: v, A: c.A}
	}), nil
}

func (n *ImageNormalizer) binarize(r, g, b uint8) uint8 {
	gray := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	enhanced := n.contrast*(gray-128) + 128
	if enhanced < 0 {
		enhanced = 0
	} else if enhanced > 255 {
		enhanced = 255
	}
	if enhanced > float64(n.threshold) {
		return 255
	}
	return 0
}
