package dto

import (
	"errors"
	"fmt"
	"net/http"
)

// Scan failure kinds. Every stage returns either a value or exactly one of these.
var (
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")
	ErrEmptyDocument   = errors.New("document is empty")
	ErrImageDecode     = errors.New("image could not be decoded")
	ErrPDFUnavailable  = errors.New("PDF support is not available")

	// PDF rasterization failures, reported separately.
	ErrPDFLoad   = errors.New("PDF document could not be loaded")
	ErrPDFPage   = errors.New("PDF page could not be opened")
	ErrPDFRender = errors.New("PDF page could not be rendered")
	ErrPDFCanvas = errors.New("no drawing surface available for the PDF page")

	ErrRecognition    = errors.New("text recognition failed")
	ErrNoReadableText = errors.New("no readable text found in document")
)

// Stage names a pipeline step.
type Stage string

const (
	StageIngest    Stage = "ingest"
	StageRasterize Stage = "rasterize"
	StageNormalize Stage = "normalize"
	StageRecognize Stage = "recognize"
)

// ScanError wraps a failure kind with the stage that produced it.
type ScanError struct {
	Stage   Stage
	Err     error
	Details string
	// Message, when set, replaces the kind's default user message.
	Message string
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scan: %s failed: %s: %v", e.Stage, e.Details, e.Err)
	}
	return fmt.Sprintf("scan: %s failed: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *ScanError) Unwrap() error {
	return e.Err
}

// Is matches the wrapped failure kind.
func (e *ScanError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewScanError creates a ScanError for stage.
func NewScanError(stage Stage, err error, details string) *ScanError {
	return &ScanError{
		Stage:   stage,
		Err:     err,
		Details: details,
	}
}

// NewFileTooLargeError reports an upload of size bytes against limit. The
// user message names the configured limit.
func NewFileTooLargeError(size, limit int64) *ScanError {
	return &ScanError{
		Stage:   StageIngest,
		Err:     ErrFileTooLarge,
		Details: fmt.Sprintf("%d bytes, limit %d", size, limit),
		Message: fmt.Sprintf("File is too large. Please upload a file smaller than %s.", FormatSize(limit)),
	}
}

// FormatSize renders a byte count as MB or KB when it divides evenly.
func FormatSize(n int64) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%d MB", n>>20)
	case n >= 1<<10 && n%(1<<10) == 0:
		return fmt.Sprintf("%d KB", n>>10)
	}
	return fmt.Sprintf("%d bytes", n)
}

type errorKind struct {
	err     error
	code    string
	status  int
	message string
}

// Ordered so that the more specific kinds win.
var errorKinds = []errorKind{
	{ErrUnsupportedType, "UNSUPPORTED_TYPE", http.StatusUnsupportedMediaType,
		"Unsupported file type. Please upload an image (JPEG, PNG, GIF, BMP, WebP) or a PDF."},
	{ErrEmptyDocument, "EMPTY_DOCUMENT", http.StatusBadRequest,
		"The selected file is empty. Please choose another file."},
	{ErrFileTooLarge, "FILE_TOO_LARGE", http.StatusRequestEntityTooLarge,
		"File is too large. Please upload a smaller file."},
	{ErrImageDecode, "IMAGE_UNREADABLE", http.StatusUnprocessableEntity,
		"The image could not be read. It may be damaged or incomplete. Please upload another file."},
	{ErrPDFUnavailable, "PDF_UNAVAILABLE", http.StatusServiceUnavailable,
		"PDF support is not available right now. Please convert the document to an image (JPEG or PNG) and try again."},
	{ErrPDFLoad, "PDF_LOAD_FAILED", http.StatusUnprocessableEntity,
		"The PDF could not be opened. It may be damaged or password protected. Please upload another file or convert it to an image."},
	{ErrPDFPage, "PDF_PAGE_FAILED", http.StatusUnprocessableEntity,
		"The first page of the PDF could not be read. Please convert it to an image and try again."},
	{ErrPDFRender, "PDF_RENDER_FAILED", http.StatusUnprocessableEntity,
		"The PDF page could not be rendered. Please convert it to an image and try again."},
	{ErrPDFCanvas, "PDF_CONTEXT_UNAVAILABLE", http.StatusUnprocessableEntity,
		"The PDF page is too large to prepare for scanning. Please convert it to an image and try again."},
	{ErrNoReadableText, "NO_READABLE_TEXT", http.StatusUnprocessableEntity,
		"No readable text was found in the document. Please try again with a clearer image."},
	{ErrRecognition, "RECOGNITION_FAILED", http.StatusInternalServerError,
		"Text recognition failed. Please try again with a clearer image."},
}

const (
	genericErrorCode    = "SCAN_FAILED"
	genericErrorMessage = "Document scanning failed. Please try again."
)

func lookupKind(err error) (errorKind, bool) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k, true
		}
	}
	return errorKind{}, false
}

// UserMessage maps err to the single human-readable message shown to the user.
func UserMessage(err error) string {
	var scanErr *ScanError
	if errors.As(err, &scanErr) && scanErr.Message != "" {
		return scanErr.Message
	}
	if k, ok := lookupKind(err); ok {
		return k.message
	}
	return genericErrorMessage
}

// ErrorCode maps err to a stable machine-readable code.
func ErrorCode(err error) string {
	if k, ok := lookupKind(err); ok {
		return k.code
	}
	return genericErrorCode
}

// HTTPStatus maps err to the status code returned by the scan endpoints.
func HTTPStatus(err error) int {
	if k, ok := lookupKind(err); ok {
		return k.status
	}
	return http.StatusInternalServerError
}
