package service

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/logger"
	"github.com/Aashish23092/visa-document-scanner/utils/visa"
)

// Overall progress checkpoints, in percent.
const (
	progressIngested    = 10
	progressRasterized  = 30
	progressNormalized  = 40
	progressRecognized  = 95
	progressDone        = 100
	recognitionProgress = progressRecognized - progressNormalized
)

// Result sources.
const (
	SourceOCR       = "ocr"
	SourceTextLayer = "text_layer"
)

// Callbacks receive pipeline events. Any of them may be nil. They are
// invoked on the goroutine that called Scan.
type Callbacks struct {
	// OnDocumentUploaded fires once with a displayable preview, before
	// recognition starts.
	OnDocumentUploaded func(preview string)
	// OnDataExtracted fires once with the final record.
	OnDataExtracted func(record dto.ExtractedRecord)
	// OnProgress receives strictly increasing values in [0, 100].
	OnProgress func(percent int)
	// OnError receives exactly one user-facing message when the scan fails.
	OnError func(message string)
}

// VisaScanService runs the ingest, rasterize, normalize, recognize and
// extract pipeline for a single upload.
type VisaScanService struct {
	ingestor        *Ingestor
	normalizer      Normalizer
	recognizer      *Recognizer
	pdf             PDFProcessor
	barcodes        BarcodeDecoder
	preferTextLayer bool
	minTextLength   int
	log             zerolog.Logger
}

// ScanOptions holds the optional parts of the pipeline.
type ScanOptions struct {
	// Barcodes, when set, is tried on the ingested bitmap.
	Barcodes BarcodeDecoder
	// PreferTextLayer uses the embedded text of a PDF when it is long
	// enough, skipping OCR.
	PreferTextLayer bool
	MinTextLength   int
}

func NewVisaScanService(ingestor *Ingestor, normalizer Normalizer, recognizer *Recognizer, pdf PDFProcessor, opts ScanOptions) *VisaScanService {
	return &VisaScanService{
		ingestor:        ingestor,
		normalizer:      normalizer,
		recognizer:      recognizer,
		pdf:             pdf,
		barcodes:        opts.Barcodes,
		preferTextLayer: opts.PreferTextLayer,
		minTextLength:   opts.MinTextLength,
		log:             logger.WithComponent("visa-scan"),
	}
}

// progressReporter forwards only increasing, clamped values.
type progressReporter struct {
	last int
	fn   func(int)
}

func (p *progressReporter) report(percent int) {
	percent = max(0, min(100, percent))
	if percent <= p.last {
		return
	}
	p.last = percent
	if p.fn != nil {
		p.fn(percent)
	}
}

// Scan processes one document. Each call works on its own buffers and
// record, so concurrent calls do not interfere.
func (s *VisaScanService) Scan(ctx context.Context, doc *dto.UploadedDocument, cb Callbacks) (*dto.ScanResponse, error) {
	scanID := uuid.NewString()
	log := s.log.With().Str("scan_id", scanID).Logger()
	progress := &progressReporter{last: -1, fn: cb.OnProgress}
	start := time.Now()

	fail := func(err error) (*dto.ScanResponse, error) {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Info().Err(err).Msg("scan abandoned")
			return nil, err
		}
		log.Error().
			Err(err).
			Str("code", dto.ErrorCode(err)).
			Dur("duration", time.Since(start)).
			Msg("scan failed")
		if cb.OnError != nil {
			cb.OnError(dto.UserMessage(err))
		}
		return nil, err
	}

	if doc != nil {
		log.Info().
			Str("file", doc.Filename).
			Str("declared_type", doc.MediaType).
			Int64("size", doc.Size()).
			Msg("scan started")
	}

	mediaType, err := s.ingestor.Validate(doc)
	if err != nil {
		return fail(err)
	}
	progress.report(progressIngested)

	ingested, err := s.ingestor.Load(ctx, doc, mediaType)
	if err != nil {
		return fail(err)
	}
	progress.report(progressRasterized)

	if cb.OnDocumentUploaded != nil {
		cb.OnDocumentUploaded(ingested.Preview)
	}

	resp := &dto.ScanResponse{
		ScanID:  scanID,
		Preview: ingested.Preview,
	}

	if s.barcodes != nil {
		if code, err := s.barcodes.Decode(ingested.Image); err == nil {
			resp.Barcode = code
			log.Debug().Int("length", len(code)).Msg("barcode decoded")
		} else {
			log.Debug().Err(err).Msg("no barcode")
		}
	}

	text, source, err := s.readText(ctx, ingested, progress, log)
	if err != nil {
		return fail(err)
	}

	record, trace := visa.ExtractWithTrace(text)
	progress.report(progressDone)

	resp.Record = record
	resp.Trace = trace
	resp.Source = source
	resp.TextLength = len(text)

	log.Info().
		Str("source", source).
		Int("fields", len(record)).
		Int("text_length", len(text)).
		Dur("duration", time.Since(start)).
		Msg("scan completed")

	if cb.OnDataExtracted != nil {
		cb.OnDataExtracted(record.Clone())
	}
	return resp, nil
}

// readText returns the document text from the PDF text layer when allowed
// and usable, otherwise from OCR on the normalized bitmap.
func (s *VisaScanService) readText(ctx context.Context, in *IngestedDocument, progress *progressReporter, log zerolog.Logger) (string, string, error) {
	if s.preferTextLayer && in.PDFData != nil {
		text, err := s.pdf.ExtractText(in.PDFData)
		switch {
		case err != nil:
			log.Warn().Err(err).Msg("PDF text layer unreadable; falling back to OCR")
		case utf8.RuneCountInString(strings.TrimSpace(text)) >= s.minTextLength:
			return text, SourceTextLayer, nil
		default:
			log.Debug().Msg("PDF text layer too short; using OCR")
		}
	}

	bitmap := in.Image
	if normalized, err := s.normalizer.Normalize(in.Image); err != nil {
		log.Warn().Err(err).Msg("normalization failed; recognizing the original image")
	} else {
		bitmap = normalized
	}
	progress.report(progressNormalized)

	result, err := s.recognizer.Recognize(ctx, bitmap, func(p float64) {
		progress.report(progressNormalized + int(p*recognitionProgress))
	})
	if err != nil {
		return "", "", err
	}
	progress.report(progressRecognized)

	return result.Text, SourceOCR, nil
}
