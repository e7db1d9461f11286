package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/service"
)

const serviceName = "Visa Document Scanner"

// PDFSupportStatus reports PDF readiness. *service.PDFSupport satisfies it.
type PDFSupportStatus interface {
	State() (service.PDFSupportState, error)
}

// HealthHandler reports whether the scanner can take uploads.
type HealthHandler struct {
	pdfSupport       PDFSupportStatus
	tesseractVersion string
}

func NewHealthHandler(pdfSupport PDFSupportStatus, tesseractVersion string) *HealthHandler {
	return &HealthHandler{
		pdfSupport:       pdfSupport,
		tesseractVersion: tesseractVersion,
	}
}

// Health handles GET /health. Images are always accepted, so the service
// is healthy even while PDF support is pending or failed.
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:           "healthy",
		Service:          serviceName,
		PDFSupport:       string(service.PDFSupportPending),
		TesseractVersion: h.tesseractVersion,
	}

	if h.pdfSupport != nil {
		state, err := h.pdfSupport.State()
		resp.PDFSupport = string(state)
		if err != nil {
			resp.PDFSupportError = err.Error()
		}
	}

	c.JSON(http.StatusOK, resp)
}
