package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTesseractClientLanguages(t *testing.T) {
	tc := NewTesseractClient("/tmp/tessdata", []string{"eng", "ara"})
	assert.Equal(t, []string{"eng", "ara"}, tc.Languages())

	// Callers cannot mutate the configured list.
	langs := tc.Languages()
	langs[0] = "fra"
	assert.Equal(t, "eng", tc.Languages()[0])
}

func TestNewTesseractClientDefaultsToEnglish(t *testing.T) {
	tc := NewTesseractClient("", nil)
	assert.Equal(t, []string{"eng"}, tc.Languages())
}
