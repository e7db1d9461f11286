package service

import (
	"fmt"
	"image"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// BarcodeDecoder reads a machine-readable code printed on the document.
type BarcodeDecoder interface {
	Decode(img image.Image) (string, error)
}

// QRCodeReader decodes QR codes, which newer residence documents carry.
type QRCodeReader struct {
	hints map[gozxing.DecodeHintType]interface{}
}

func NewQRCodeReader() *QRCodeReader {
	return &QRCodeReader{
		hints: map[gozxing.DecodeHintType]interface{}{
			gozxing.DecodeHintType_TRY_HARDER: true,
		},
	}
}

func (r *QRCodeReader) Decode(img image.Image) (string, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	result, err := qrcode.NewQRCodeReader().Decode(bmp, r.hints)
	if err != nil {
		return "", fmt.Errorf("failed to decode QR code: %w", err)
	}

	return result.GetText(), nil
}
