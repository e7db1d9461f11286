package dto

import "strings"

// Accepted upload media types.
const (
	MediaTypeJPEG = "image/jpeg"
	MediaTypeJPG  = "image/jpg"
	MediaTypePNG  = "image/png"
	MediaTypeGIF  = "image/gif"
	MediaTypeBMP  = "image/bmp"
	MediaTypeWebP = "image/webp"
	MediaTypePDF  = "application/pdf"
)

// AcceptedMediaTypes is the closed set of upload types the scanner handles.
var AcceptedMediaTypes = []string{
	MediaTypeJPEG,
	MediaTypeJPG,
	MediaTypePNG,
	MediaTypeGIF,
	MediaTypeBMP,
	MediaTypeWebP,
	MediaTypePDF,
}

// UploadedDocument is a raw file handed to the scanner by a file picker.
type UploadedDocument struct {
	Filename  string
	MediaType string
	Data      []byte
}

// Size returns the byte length of the document.
func (d *UploadedDocument) Size() int64 {
	return int64(len(d.Data))
}

// NormalizeMediaType lowercases a media type and drops any parameters.
func NormalizeMediaType(mediaType string) string {
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	return mediaType
}

// IsAcceptedMediaType reports whether mediaType is in AcceptedMediaTypes.
func IsAcceptedMediaType(mediaType string) bool {
	mediaType = NormalizeMediaType(mediaType)
	for _, t := range AcceptedMediaTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}
