package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/visa-document-scanner/client"
)

type fakeEngine struct {
	text  string
	err   error
	delay time.Duration
	// block, when set, holds Recognize until it is closed.
	block chan struct{}
	calls atomic.Int32
	// lastImage is the most recent encoded bitmap handed to the engine.
	lastImage atomic.Pointer[[]byte]
}

func (f *fakeEngine) Recognize(imageBytes []byte) (client.OCRResult, error) {
	f.calls.Add(1)
	f.lastImage.Store(&imageBytes)
	if f.block != nil {
		<-f.block
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return client.OCRResult{}, f.err
	}
	return client.OCRResult{Text: f.text, Confidence: 87.5}, nil
}

type fakePDFDocument struct {
	pages     int
	bound     image.Rectangle
	boundErr  error
	render    *image.RGBA
	renderErr error

	renderedPage int
	renderedDPI  float64
	closed       bool
}

func (d *fakePDFDocument) NumPage() int { return d.pages }

func (d *fakePDFDocument) Bound(int) (image.Rectangle, error) {
	return d.bound, d.boundErr
}

func (d *fakePDFDocument) ImageDPI(page int, dpi float64) (*image.RGBA, error) {
	d.renderedPage = page
	d.renderedDPI = dpi
	return d.render, d.renderErr
}

func (d *fakePDFDocument) Close() error {
	d.closed = true
	return nil
}

type fakePDFProcessor struct {
	img     image.Image
	err     error
	text    string
	textErr error
	renders atomic.Int32
}

func (p *fakePDFProcessor) RenderFirstPage(ctx context.Context, pdfData []byte) (image.Image, error) {
	p.renders.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return p.img, nil
}

func (p *fakePDFProcessor) ExtractText(pdfData []byte) (string, error) {
	return p.text, p.textErr
}

type failingNormalizer struct {
	calls atomic.Int32
}

func (n *failingNormalizer) Normalize(image.Image) (*image.NRGBA, error) {
	n.calls.Add(1)
	return nil, errors.New("out of memory")
}

type fakeBarcodes struct {
	text string
	err  error
}

func (f fakeBarcodes) Decode(image.Image) (string, error) {
	return f.text, f.err
}

func uniformImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func readyPDFSupport(t *testing.T, p PDFProcessor) *PDFSupport {
	t.Helper()
	s := NewPDFSupport(p)
	require.NoError(t, s.Init(context.Background()))
	return s
}
