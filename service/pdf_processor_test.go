package service

import (
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/visa-document-scanner/dto"
)

func processorFor(doc *fakePDFDocument, openErr, countErr error, pages int) PDFProcessor {
	open := func([]byte) (PDFDocument, error) {
		if openErr != nil {
			return nil, openErr
		}
		return doc, nil
	}
	count := func([]byte) (int, error) {
		return pages, countErr
	}
	return NewPDFProcessor(open, count, 2.0, 1_000_000)
}

func TestRenderFirstPage(t *testing.T) {
	doc := &fakePDFDocument{
		pages:  3,
		bound:  image.Rect(0, 0, 200, 300),
		render: uniformImage(400, 600, color.White),
	}
	p := processorFor(doc, nil, nil, 3)

	img, err := p.RenderFirstPage(context.Background(), []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 0, doc.renderedPage)
	assert.Equal(t, 144.0, doc.renderedDPI)
	assert.True(t, doc.closed)
}

func TestRenderFirstPageFailures(t *testing.T) {
	okBound := image.Rect(0, 0, 200, 300)
	okRender := uniformImage(400, 600, color.White)

	tests := []struct {
		name     string
		doc      *fakePDFDocument
		openErr  error
		countErr error
		want     error
	}{
		{
			name:     "structural check fails",
			doc:      &fakePDFDocument{pages: 1, bound: okBound, render: okRender},
			countErr: errors.New("xref corrupt"),
			want:     dto.ErrPDFLoad,
		},
		{
			name:    "renderer cannot open",
			doc:     &fakePDFDocument{},
			openErr: errors.New("encrypted"),
			want:    dto.ErrPDFLoad,
		},
		{
			name: "no pages",
			doc:  &fakePDFDocument{pages: 0},
			want: dto.ErrPDFPage,
		},
		{
			name: "page bounds unreadable",
			doc:  &fakePDFDocument{pages: 1, boundErr: errors.New("bad page tree")},
			want: dto.ErrPDFPage,
		},
		{
			name: "page too large",
			doc:  &fakePDFDocument{pages: 1, bound: image.Rect(0, 0, 5000, 5000), render: okRender},
			want: dto.ErrPDFCanvas,
		},
		{
			name: "render fails",
			doc:  &fakePDFDocument{pages: 1, bound: okBound, renderErr: errors.New("font missing")},
			want: dto.ErrPDFRender,
		},
		{
			name: "empty bitmap",
			doc:  &fakePDFDocument{pages: 1, bound: okBound, render: image.NewRGBA(image.Rect(0, 0, 0, 0))},
			want: dto.ErrPDFCanvas,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := processorFor(tt.doc, tt.openErr, tt.countErr, tt.doc.pages)

			_, err := p.RenderFirstPage(context.Background(), []byte("%PDF"))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var scanErr *dto.ScanError
			require.ErrorAs(t, err, &scanErr)
			assert.Equal(t, dto.StageRasterize, scanErr.Stage)
		})
	}
}

func TestRenderFirstPageCancelled(t *testing.T) {
	doc := &fakePDFDocument{pages: 1, bound: image.Rect(0, 0, 10, 10), render: uniformImage(20, 20, color.White)}
	p := processorFor(doc, nil, nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.RenderFirstPage(ctx, []byte("%PDF"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, doc.renderedDPI)
}

func TestPdfcpuPageCounterReadsProbe(t *testing.T) {
	n, err := PdfcpuPageCounter(probePDF())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPdfcpuPageCounterRejectsGarbage(t *testing.T) {
	_, err := PdfcpuPageCounter([]byte("not a pdf at all"))
	assert.Error(t, err)
}
