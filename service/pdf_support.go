package service

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/logger"
)

// PDFSupportState is the readiness of the PDF rendering path.
type PDFSupportState string

const (
	PDFSupportPending PDFSupportState = "pending"
	PDFSupportReady   PDFSupportState = "ready"
	PDFSupportFailed  PDFSupportState = "failed"
)

// PDFSupport tracks whether PDF rendering has been verified to work. PDF
// uploads are refused until Init succeeded.
type PDFSupport struct {
	processor PDFProcessor
	log       zerolog.Logger

	mu    sync.RWMutex
	state PDFSupportState
	err   error
}

func NewPDFSupport(processor PDFProcessor) *PDFSupport {
	return &PDFSupport{
		processor: processor,
		log:       logger.WithComponent("pdf-support"),
		state:     PDFSupportPending,
	}
}

// Init renders a built-in one page document. It may be called again after
// a failure; once ready it is a no-op.
func (s *PDFSupport) Init(ctx context.Context) error {
	if s.Ready() {
		return nil
	}

	_, err := s.processor.RenderFirstPage(ctx, probePDF())

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = PDFSupportFailed
		s.err = err
		s.log.Error().Err(err).Msg("PDF support unavailable")
		return fmt.Errorf("%w: %v", dto.ErrPDFUnavailable, err)
	}
	s.state = PDFSupportReady
	s.err = nil
	s.log.Info().Msg("PDF support ready")
	return nil
}

// State returns the current state and, when failed, the probe error.
func (s *PDFSupport) State() (PDFSupportState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, s.err
}

func (s *PDFSupport) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == PDFSupportReady
}

// probePDF builds a minimal valid PDF with a single blank 72x72 pt page.
func probePDF() []byte {
	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 72 72] /Resources << >> >>",
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}
