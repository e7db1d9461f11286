package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/service"
)

type fakePDFStatus struct {
	state service.PDFSupportState
	err   error
}

func (f fakePDFStatus) State() (service.PDFSupportState, error) {
	return f.state, f.err
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		status  PDFSupportStatus
		state   string
		errText string
	}{
		{"ready", fakePDFStatus{state: service.PDFSupportReady}, "ready", ""},
		{"failed", fakePDFStatus{state: service.PDFSupportFailed, err: errors.New("mupdf missing")}, "failed", "mupdf missing"},
		{"not wired", nil, "pending", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/health", NewHealthHandler(tt.status, "5.3.0").Health)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, http.StatusOK, w.Code)
			var resp dto.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "healthy", resp.Status)
			assert.Equal(t, tt.state, resp.PDFSupport)
			assert.Equal(t, tt.errText, resp.PDFSupportError)
			assert.Equal(t, "5.3.0", resp.TesseractVersion)
		})
	}
}
