package visa

import (
	"testing"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/stretchr/testify/assert"
)

func TestExtractNationality(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		source string
	}{
		{"country label", "Nationality: Morocco", "Moroccan", "nationality-labeled"},
		{"demonym label", "NATIONALITY: MOROCCAN", "Moroccan", "nationality-labeled"},
		{"two word country", "Nationality: Sri Lanka Date of Birth: 02/02/1992", "Sri Lankan", "nationality-labeled"},
		{"literal after issuing state", "UNITED ARAB EMIRATES\nREPUBLIC OF INDIA", "Indian", "nationality-literal"},
		{"issuing state only", "UNITED ARAB EMIRATES", "Emirati", "nationality-literal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, trace := ExtractWithTrace(tt.text)
			assert.Equal(t, tt.want, rec[dto.FieldNationality])
			assert.Equal(t, tt.source, trace[dto.FieldNationality])
		})
	}
}

func TestCanonicalNationality(t *testing.T) {
	assert.Equal(t, "British", CanonicalNationality("united  KINGDOM"))
	assert.Equal(t, "Moroccan", CanonicalNationality("moroccan"))
	assert.Equal(t, "Filipino", CanonicalNationality("Philippines"))
	assert.Equal(t, "Atlantean", CanonicalNationality("ATLANTEAN"))
}
