package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/logger"
)

// IngestedDocument is an upload that passed validation and was decoded to
// a bitmap.
type IngestedDocument struct {
	MediaType string
	Image     image.Image
	// Preview is a data URI suitable for direct display.
	Preview string
	// PDFData is set for PDF uploads.
	PDFData []byte
}

// Ingestor validates uploads and turns them into bitmaps.
type Ingestor struct {
	maxFileSize int64
	pdf         PDFProcessor
	pdfSupport  *PDFSupport
	log         zerolog.Logger
}

func NewIngestor(maxFileSize int64, pdf PDFProcessor, pdfSupport *PDFSupport) *Ingestor {
	return &Ingestor{
		maxFileSize: maxFileSize,
		pdf:         pdf,
		pdfSupport:  pdfSupport,
		log:         logger.WithComponent("ingestor"),
	}
}

// Validate checks doc without decoding it and returns its effective media
// type. An empty declared type is sniffed from the content.
func (in *Ingestor) Validate(doc *dto.UploadedDocument) (string, error) {
	if doc == nil || len(doc.Data) == 0 {
		return "", dto.NewScanError(dto.StageIngest, dto.ErrEmptyDocument, "")
	}

	mediaType := dto.NormalizeMediaType(doc.MediaType)
	if mediaType == "" {
		mediaType = dto.NormalizeMediaType(mimetype.Detect(doc.Data).String())
		in.log.Debug().Str("detected", mediaType).Str("file", doc.Filename).Msg("media type sniffed")
	}

	if !dto.IsAcceptedMediaType(mediaType) {
		return "", dto.NewScanError(dto.StageIngest, dto.ErrUnsupportedType, mediaType)
	}

	if doc.Size() > in.maxFileSize {
		return "", dto.NewFileTooLargeError(doc.Size(), in.maxFileSize)
	}

	if mediaType == dto.MediaTypePDF && (in.pdfSupport == nil || !in.pdfSupport.Ready()) {
		return "", dto.NewScanError(dto.StageIngest, dto.ErrPDFUnavailable, "")
	}

	return mediaType, nil
}

// Load decodes a validated document. PDFs are rasterized to their first page.
func (in *Ingestor) Load(ctx context.Context, doc *dto.UploadedDocument, mediaType string) (*IngestedDocument, error) {
	if mediaType == dto.MediaTypePDF {
		return in.loadPDF(ctx, doc)
	}

	img, format, err := image.Decode(bytes.NewReader(doc.Data))
	if err != nil {
		return nil, dto.NewScanError(dto.StageIngest, dto.ErrImageDecode, err.Error())
	}

	in.log.Debug().
		Str("format", format).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("image decoded")

	return &IngestedDocument{
		MediaType: mediaType,
		Image:     img,
		Preview:   dataURI(mediaType, doc.Data),
	}, nil
}

func (in *Ingestor) loadPDF(ctx context.Context, doc *dto.UploadedDocument) (*IngestedDocument, error) {
	img, err := in.pdf.RenderFirstPage(ctx, doc.Data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, dto.NewScanError(dto.StageRasterize, dto.ErrPDFRender, err.Error())
	}

	return &IngestedDocument{
		MediaType: dto.MediaTypePDF,
		Image:     img,
		Preview:   dataURI(dto.MediaTypePNG, buf.Bytes()),
		PDFData:   doc.Data,
	}, nil
}

func dataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
