package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ScanResponse is returned by the scan endpoint once the pipeline finished.
type ScanResponse struct {
	ScanID     string            `json:"scan_id"`
	Preview    string            `json:"preview"`
	Record     ExtractedRecord   `json:"record"`
	Barcode    string            `json:"barcode,omitempty"`
	Source     string            `json:"source"`
	TextLength int               `json:"text_length"`
	Trace      map[string]string `json:"trace,omitempty"`
}

// ProgressEvent is streamed while a scan is running.
type ProgressEvent struct {
	Progress int `json:"progress"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	PDFSupport       string `json:"pdf_support"`
	PDFSupportError  string `json:"pdf_support_error,omitempty"`
	TesseractVersion string `json:"tesseract_version,omitempty"`
}
