package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/Aashish23092/visa-document-scanner/client"
	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/logger"
)

// OCREngine reads text from an encoded image. *client.TesseractClient
// satisfies it.
type OCREngine interface {
	Recognize(imageBytes []byte) (client.OCRResult, error)
}

const (
	defaultProgressInterval = 250 * time.Millisecond

	// The engine reports no progress of its own; the estimate approaches
	// progressCeiling until the engine returns.
	progressCeiling = 0.95
	progressStep    = 0.15
)

// Recognizer runs OCR off the calling goroutine and reports an estimated
// progress fraction in [0, 1] on the calling goroutine.
type Recognizer struct {
	engine        OCREngine
	minTextLength int
	interval      time.Duration
	log           zerolog.Logger
}

func NewRecognizer(engine OCREngine, minTextLength int) *Recognizer {
	return &Recognizer{
		engine:        engine,
		minTextLength: minTextLength,
		interval:      defaultProgressInterval,
		log:           logger.WithComponent("recognizer"),
	}
}

type ocrOutcome struct {
	result client.OCRResult
	err    error
}

// Recognize encodes img as PNG and runs the engine on it. If ctx ends first
// the engine keeps running in the background and its result is discarded.
func (r *Recognizer) Recognize(ctx context.Context, img image.Image, onProgress func(float64)) (*dto.RecognitionResult, error) {
	report := func(p float64) {
		if onProgress != nil {
			onProgress(p)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, dto.NewScanError(dto.StageRecognize, dto.ErrRecognition, err.Error())
	}

	done := make(chan ocrOutcome, 1)
	go func(data []byte) {
		res, err := r.engine.Recognize(data)
		done <- ocrOutcome{result: res, err: err}
	}(buf.Bytes())

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	progress := 0.0
	report(progress)
	for {
		select {
		case <-ctx.Done():
			r.log.Debug().Msg("recognition abandoned; engine result will be ignored")
			return nil, ctx.Err()
		case <-ticker.C:
			progress += (progressCeiling - progress) * progressStep
			report(progress)
		case out := <-done:
			if out.err != nil {
				return nil, dto.NewScanError(dto.StageRecognize, dto.ErrRecognition, out.err.Error())
			}
			report(1)

			text := strings.TrimSpace(out.result.Text)
			if utf8.RuneCountInString(text) < r.minTextLength {
				return nil, dto.NewScanError(dto.StageRecognize, dto.ErrNoReadableText, "")
			}

			r.log.Debug().
				Int("text_length", len(out.result.Text)).
				Float64("confidence", out.result.Confidence).
				Msg("recognition finished")

			return &dto.RecognitionResult{
				Text:       out.result.Text,
				Progress:   100,
				Confidence: out.result.Confidence,
			}, nil
		}
	}
}
