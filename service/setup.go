package service

import (
	"github.com/Aashish23092/visa-document-scanner/client"
	"github.com/Aashish23092/visa-document-scanner/config"
)

// Pipeline bundles the long-lived components built from configuration.
type Pipeline struct {
	Scanner    *VisaScanService
	PDFSupport *PDFSupport
	OCR        *client.TesseractClient
}

// NewPipeline wires the production scanner: Tesseract for OCR, MuPDF for
// rendering and pdfcpu for structural PDF checks. PDF support starts
// pending; call PDFSupport.Init before accepting PDFs.
func NewPipeline(cfg *config.Config) *Pipeline {
	ocr := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	pdf := NewPDFProcessor(FitzOpener, PdfcpuPageCounter, cfg.PDFRenderScale, cfg.MaxCanvasPixels)
	support := NewPDFSupport(pdf)

	opts := ScanOptions{
		PreferTextLayer: cfg.PreferPDFTextLayer,
		MinTextLength:   cfg.MinTextLength,
	}
	if cfg.DecodeBarcodes {
		opts.Barcodes = NewQRCodeReader()
	}

	scanner := NewVisaScanService(
		NewIngestor(cfg.MaxFileSize, pdf, support),
		NewImageNormalizer(cfg.UpscaleFactor, cfg.Contrast, cfg.Threshold),
		NewRecognizer(ocr, cfg.MinTextLength),
		pdf,
		opts,
	)

	return &Pipeline{
		Scanner:    scanner,
		PDFSupport: support,
		OCR:        ocr,
	}
}
