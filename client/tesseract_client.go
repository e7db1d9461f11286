package client

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/rs/zerolog"

	"github.com/Aashish23092/visa-document-scanner/logger"
)

// OCRResult is the text Tesseract read from one image and the mean word
// confidence it reported, in percent.
type OCRResult struct {
	Text       string
	Confidence float64
}

// TesseractClient runs Tesseract over in-memory images. It holds no
// gosseract handle between calls, so one client may be shared by
// concurrent scans.
type TesseractClient struct {
	dataPath  string
	languages []string
	log       zerolog.Logger
}

func NewTesseractClient(dataPath string, languages []string) *TesseractClient {
	if len(languages) == 0 {
		languages = []string{"eng"}
	}
	return &TesseractClient{
		dataPath:  dataPath,
		languages: languages,
		log:       logger.WithComponent("tesseract"),
	}
}

// Languages returns the language models loaded for each recognition.
func (tc *TesseractClient) Languages() []string {
	return append([]string(nil), tc.languages...)
}

// Recognize extracts text from an encoded image (PNG, JPEG, ...) using all
// configured languages in a single pass.
func (tc *TesseractClient) Recognize(imageBytes []byte) (OCRResult, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if tc.dataPath != "" {
		client.SetTessdataPrefix(tc.dataPath)
	}

	if err := client.SetLanguage(tc.languages...); err != nil {
		return OCRResult{}, fmt.Errorf("failed to set language %s: %w", strings.Join(tc.languages, "+"), err)
	}

	if err := client.SetImageFromBytes(imageBytes); err != nil {
		return OCRResult{}, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return OCRResult{}, fmt.Errorf("failed to extract text: %w", err)
	}

	result := OCRResult{Text: text}

	// Confidence is informational; a failure here keeps the text.
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		tc.log.Debug().Err(err).Msg("bounding boxes unavailable")
		return result, nil
	}

	var total float64
	for _, box := range boxes {
		total += box.Confidence
	}
	if len(boxes) > 0 {
		result.Confidence = total / float64(len(boxes))
	}

	return result, nil
}

// Version reports the linked Tesseract library version.
func (tc *TesseractClient) Version() string {
	return gosseract.Version()
}

// Close performs cleanup
func (tc *TesseractClient) Close() {
	tc.log.Debug().Msg("tesseract client closed")
}
