package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/logger"
	"github.com/Aashish23092/visa-document-scanner/service"
	"github.com/Aashish23092/visa-document-scanner/utils/visa"
)

// Scanner runs the scan pipeline. *service.VisaScanService satisfies it.
type Scanner interface {
	Scan(ctx context.Context, doc *dto.UploadedDocument, cb service.Callbacks) (*dto.ScanResponse, error)
}

// VisaHandler handles visa document scan requests
type VisaHandler struct {
	scanner Scanner
	log     zerolog.Logger
}

// NewVisaHandler creates a new VisaHandler instance
func NewVisaHandler(scanner Scanner) *VisaHandler {
	return &VisaHandler{
		scanner: scanner,
		log:     logger.WithComponent("visa-handler"),
	}
}

// ScanVisa handles POST /visa/scan. The upload is read from the "file"
// form field. With ?stream=true the response is a server-sent event
// stream of preview, progress and record (or error) events.
func (h *VisaHandler) ScanVisa(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "MISSING_FILE", "A file is required in the \"file\" form field", err)
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = inferMimeType(file.Filename)
	}

	reader, err := file.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "UPLOAD_UNREADABLE", "Failed to open uploaded file", err)
		return
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "UPLOAD_UNREADABLE", "Failed to read file data", err)
		return
	}

	doc := &dto.UploadedDocument{
		Filename:  file.Filename,
		MediaType: mimeType,
		Data:      data,
	}

	h.log.Info().
		Str("file", file.Filename).
		Str("content_type", mimeType).
		Int("size", len(data)).
		Msg("received visa scan request")

	if c.Query("stream") == "true" {
		h.streamScan(c, doc)
		return
	}

	resp, err := h.scanner.Scan(c.Request.Context(), doc, service.Callbacks{})
	if err != nil {
		h.sendScanError(c, err)
		return
	}

	if c.Query("trace") != "true" {
		resp.Trace = nil
	}
	c.JSON(http.StatusOK, resp)
}

func (h *VisaHandler) streamScan(c *gin.Context, doc *dto.UploadedDocument) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	emit := func(event string, payload interface{}) {
		c.SSEvent(event, payload)
		c.Writer.Flush()
	}

	cb := service.Callbacks{
		OnDocumentUploaded: func(preview string) {
			emit("preview", preview)
		},
		OnProgress: func(percent int) {
			emit("progress", dto.ProgressEvent{Progress: percent})
		},
	}

	resp, err := h.scanner.Scan(c.Request.Context(), doc, cb)
	if err != nil {
		if c.Request.Context().Err() != nil {
			return
		}
		status := dto.HTTPStatus(err)
		emit("error", dto.ErrorResponse{
			Error:   dto.ErrorCode(err),
			Message: dto.UserMessage(err),
			Code:    status,
		})
		return
	}

	if c.Query("trace") != "true" {
		resp.Trace = nil
	}
	resp.Preview = ""
	emit("record", resp)
}

// CleanRecord handles POST /visa/record: a record edited by the user is
// cleaned with the same rules as extracted ones. Unknown fields are dropped.
func (h *VisaHandler) CleanRecord(c *gin.Context) {
	var rec dto.ExtractedRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		h.sendError(c, http.StatusBadRequest, "INVALID_RECORD", "Record must be a JSON object of string fields", err)
		return
	}
	if rec == nil {
		rec = dto.ExtractedRecord{}
	}

	c.JSON(http.StatusOK, visa.CleanRecord(rec))
}

// sendScanError maps a pipeline failure onto its status and user message.
func (h *VisaHandler) sendScanError(c *gin.Context, err error) {
	if c.Request.Context().Err() != nil {
		h.log.Info().Err(err).Msg("client went away during scan")
		c.Status(499)
		return
	}
	status := dto.HTTPStatus(err)
	c.JSON(status, dto.ErrorResponse{
		Error:   dto.ErrorCode(err),
		Message: dto.UserMessage(err),
		Code:    status,
	})
}

// sendError sends a structured error response
func (h *VisaHandler) sendError(c *gin.Context, statusCode int, code, message string, err error) {
	if err != nil {
		h.log.Warn().Err(err).Str("code", code).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: message,
		Code:    statusCode,
	})
}

// inferMimeType infers MIME type from file extension
func inferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return dto.MediaTypePDF
	case strings.HasSuffix(lower, ".png"):
		return dto.MediaTypePNG
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return dto.MediaTypeJPEG
	case strings.HasSuffix(lower, ".gif"):
		return dto.MediaTypeGIF
	case strings.HasSuffix(lower, ".bmp"):
		return dto.MediaTypeBMP
	case strings.HasSuffix(lower, ".webp"):
		return dto.MediaTypeWebP
	}
	return ""
}
