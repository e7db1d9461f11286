package visa

import (
	"testing"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		first  string
		last   string
		source string
	}{
		{"name label", "Name: John Smith", "John", "Smith", "labeled"},
		{"upper case label", "NAME: JOHN SMITH", "John", "Smith", "labeled"},
		{"first and last labels", "First Name: Priya Last Name: Sharma", "Priya", "Sharma", "labeled"},
		{"surname first", "Surname: SMITH Given Names: JOHN", "John", "Smith", "labeled"},
		{"standalone line", "RESIDENCE PERMIT\nMARIA GARCIA\nFile 201/2023", "Maria", "Garcia", "name-line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, trace := ExtractWithTrace(tt.text)
			assert.Equal(t, tt.first, rec[dto.FieldFirstName])
			assert.Equal(t, tt.last, rec[dto.FieldLastName])
			assert.Equal(t, tt.source, trace[dto.FieldFirstName])
		})
	}
}

func TestExtractNameIgnoresSponsorName(t *testing.T) {
	rec := Extract("Sponsor Name: Acme Trading")

	_, ok := rec.Get(dto.FieldFirstName)
	assert.False(t, ok)
	assert.Equal(t, "Acme Trading", rec[dto.FieldSponsor])
}

func TestExtractNameSkipsHeadingLines(t *testing.T) {
	rec := Extract("UNITED ARAB\nENTRY PERMIT\nSOFTWARE ENGINEER")

	_, ok := rec.Get(dto.FieldFirstName)
	assert.False(t, ok)
	_, ok = rec.Get(dto.FieldLastName)
	assert.False(t, ok)
}
