package visa

import (
	"testing"
	"time"

	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"15/03/2023", time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC), true},
		{"03/25/2024", time.Date(2024, time.March, 25, 0, 0, 0, 0, time.UTC), true},
		{"2024-03-15", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), true},
		{"1-2-1990", time.Date(1990, time.February, 1, 0, 0, 0, 0, time.UTC), true},
		{"31/02/2024", time.Time{}, false},
		{"13/13/2024", time.Time{}, false},
		{"00/01/2024", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := parseDate(tt.in)
			require.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestClassifyDatesBirthAndExpiryAreNotSwapped(t *testing.T) {
	rec := Extract("Date of Birth: 12/05/1985 Expiry Date: 20/11/2026")

	assert.Equal(t, "12/05/1985", rec[dto.FieldDateOfBirth])
	assert.Equal(t, "20/11/2026", rec[dto.FieldExpiryDate])
	_, ok := rec.Get(dto.FieldIssueDate)
	assert.False(t, ok)
}

func TestClassifyDatesFromTo(t *testing.T) {
	rec := Extract("Valid from 01/01/2024 to 01/01/2026")

	assert.Equal(t, "01/01/2024", rec[dto.FieldIssueDate])
	assert.Equal(t, "01/01/2026", rec[dto.FieldExpiryDate])
}

func TestClassifyDatesChronologicalFallback(t *testing.T) {
	rec, trace := ExtractWithTrace("12/05/1985 01/02/2022 01/02/2024")

	assert.Equal(t, "12/05/1985", rec[dto.FieldDateOfBirth])
	assert.Equal(t, "01/02/2022", rec[dto.FieldIssueDate])
	assert.Equal(t, "01/02/2024", rec[dto.FieldExpiryDate])
	assert.Equal(t, "date-chronological", trace[dto.FieldExpiryDate])
}

func TestClassifyDatesFallbackSortsAssignedDatesToo(t *testing.T) {
	rec, trace := ExtractWithTrace("Date of Birth: 01/02/1985 Expiry Date: 01/02/2030 Printed 05/06/2023")

	assert.Equal(t, "01/02/1985", rec[dto.FieldDateOfBirth])
	assert.Equal(t, "01/02/2030", rec[dto.FieldExpiryDate])
	assert.Equal(t, "05/06/2023", rec[dto.FieldIssueDate])
	assert.Equal(t, "date-chronological", trace[dto.FieldIssueDate])
}

func TestClassifyDatesKeepsFirstAssignment(t *testing.T) {
	rec := Extract("Expiry Date: 01/01/2025 Valid Until: 01/01/2026")

	assert.Equal(t, "01/01/2025", rec[dto.FieldExpiryDate])
	_, ok := rec.Get(dto.FieldIssueDate)
	assert.False(t, ok)
}

func TestClassifyDatesNeverReusesADate(t *testing.T) {
	rec := Extract("Issue Date: 10/10/2020 Expiry Date: 10/10/2020")

	assert.Equal(t, "10/10/2020", rec[dto.FieldIssueDate])
	_, ok := rec.Get(dto.FieldExpiryDate)
	assert.False(t, ok)
}

func TestClassifyDatesLabeledExpiries(t *testing.T) {
	rec, trace := ExtractWithTrace(
		"Passport Expiry Date: 10/10/2030 Labour Card Expiry: 05/06/2026 Expiry Date: 01/01/2026")

	assert.Equal(t, "10/10/2030", rec[dto.FieldPassportExpiry])
	assert.Equal(t, "05/06/2026", rec[dto.FieldLaborCardExpiry])
	assert.Equal(t, "01/01/2026", rec[dto.FieldExpiryDate])
	assert.Equal(t, "date-labeled", trace[dto.FieldPassportExpiry])
	assert.Equal(t, "date-context", trace[dto.FieldExpiryDate])
}

func TestClassifyDatesIgnoresInvalidDates(t *testing.T) {
	rec := Extract("Expiry Date: 31/02/2024")

	_, ok := rec.Get(dto.FieldExpiryDate)
	assert.False(t, ok)
}
