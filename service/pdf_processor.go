package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/logger"
)

// pointsPerInch is the PDF user-space unit; rendering at 72*scale DPI yields
// scale pixels per point.
const pointsPerInch = 72.0

// PDFProcessor turns PDF bytes into something the OCR pipeline can read.
type PDFProcessor interface {
	// RenderFirstPage rasterizes page 1 only.
	RenderFirstPage(ctx context.Context, pdfData []byte) (image.Image, error)
	// ExtractText returns the embedded text layer of page 1, if any.
	ExtractText(pdfData []byte) (string, error)
}

// PDFDocument is the subset of a rendering engine document the processor
// needs. *fitz.Document satisfies it.
type PDFDocument interface {
	NumPage() int
	Bound(pageNumber int) (image.Rectangle, error)
	ImageDPI(pageNumber int, dpi float64) (*image.RGBA, error)
	Close() error
}

// PDFOpener opens a rendering document from memory.
type PDFOpener func(pdfData []byte) (PDFDocument, error)

// PageCounter structurally validates a PDF and returns its page count.
type PageCounter func(pdfData []byte) (int, error)

// FitzOpener opens documents with MuPDF.
func FitzOpener(pdfData []byte) (PDFDocument, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// PdfcpuPageCounter reads the cross-reference table with pdfcpu in relaxed
// validation mode.
func PdfcpuPageCounter(pdfData []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.PageCount(bytes.NewReader(pdfData), conf)
}

type pdfProcessor struct {
	open            PDFOpener
	countPages      PageCounter
	scale           float64
	maxCanvasPixels int64
	log             zerolog.Logger
}

// NewPDFProcessor creates a processor rendering at 72*scale DPI. Pages whose
// rendered pixel count would exceed maxCanvasPixels are refused.
func NewPDFProcessor(open PDFOpener, countPages PageCounter, scale float64, maxCanvasPixels int64) PDFProcessor {
	if open == nil {
		open = FitzOpener
	}
	if countPages == nil {
		countPages = PdfcpuPageCounter
	}
	return &pdfProcessor{
		open:            open,
		countPages:      countPages,
		scale:           scale,
		maxCanvasPixels: maxCanvasPixels,
		log:             logger.WithComponent("pdf"),
	}
}

func (p *pdfProcessor) RenderFirstPage(ctx context.Context, pdfData []byte) (image.Image, error) {
	pages, err := p.countPages(pdfData)
	if err != nil {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFLoad, err.Error())
	}
	if pages > 1 {
		p.log.Info().Int("pages", pages).Msg("only the first PDF page is scanned; remaining pages ignored")
	}

	doc, err := p.open(pdfData)
	if err != nil {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFLoad, err.Error())
	}
	defer func() {
		if closeErr := doc.Close(); closeErr != nil {
			p.log.Warn().Err(closeErr).Msg("failed to close PDF document")
		}
	}()

	if doc.NumPage() < 1 {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFPage, "document has no pages")
	}

	bounds, err := doc.Bound(0)
	if err != nil {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFPage, err.Error())
	}

	width := float64(bounds.Dx()) * p.scale
	height := float64(bounds.Dy()) * p.scale
	if width < 1 || height < 1 {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFCanvas, "page has no area")
	}
	if p.maxCanvasPixels > 0 && width*height > float64(p.maxCanvasPixels) {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFCanvas,
			fmt.Sprintf("page needs %.0fx%.0f pixels", width, height))
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := doc.ImageDPI(0, pointsPerInch*p.scale)
	if err != nil {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFRender, err.Error())
	}
	if img == nil || img.Bounds().Empty() {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFCanvas, "renderer returned an empty bitmap")
	}

	p.log.Debug().
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Float64("dpi", pointsPerInch*p.scale).
		Msg("rendered first PDF page")

	return img, nil
}

func (p *pdfProcessor) ExtractText(pdfData []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text layer: %w", err)
	}
	if r.NumPage() < 1 {
		return "", nil
	}

	page := r.Page(1)
	if page.V.IsNull() {
		return "", nil
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text rows: %w", err)
	}

	var sb strings.Builder
	for _, row := range rows {
		for _, word := range row.Content {
			sb.WriteString(word.S)
		}
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
