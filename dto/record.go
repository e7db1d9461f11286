package dto

// Field names of an ExtractedRecord.
const (
	FieldVisaNumber       = "visaNumber"
	FieldVisaType         = "visaType"
	FieldIssueDate        = "issueDate"
	FieldExpiryDate       = "expiryDate"
	FieldSponsor          = "sponsor"
	FieldNationality      = "nationality"
	FieldPassportNumber   = "passportNumber"
	FieldPassportExpiry   = "passportExpiry"
	FieldEmiratesID       = "emiratesId"
	FieldEmiratesIDExpiry = "emiratesIdExpiry"
	FieldLaborCardNumber  = "laborCardNumber"
	FieldLaborCardExpiry  = "laborCardExpiry"
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldProfession       = "profession"
	FieldSalary           = "salary"
	FieldPlaceOfBirth     = "placeOfBirth"
	FieldDateOfBirth      = "dateOfBirth"
	FieldGender           = "gender"
	FieldMaritalStatus    = "maritalStatus"
)

// FieldNames lists every field an ExtractedRecord may carry, in display order.
var FieldNames = []string{
	FieldVisaNumber,
	FieldVisaType,
	FieldIssueDate,
	FieldExpiryDate,
	FieldSponsor,
	FieldNationality,
	FieldPassportNumber,
	FieldPassportExpiry,
	FieldEmiratesID,
	FieldEmiratesIDExpiry,
	FieldLaborCardNumber,
	FieldLaborCardExpiry,
	FieldFirstName,
	FieldLastName,
	FieldProfession,
	FieldSalary,
	FieldPlaceOfBirth,
	FieldDateOfBirth,
	FieldGender,
	FieldMaritalStatus,
}

var knownFields = func() map[string]bool {
	m := make(map[string]bool, len(FieldNames))
	for _, f := range FieldNames {
		m[f] = true
	}
	return m
}()

// IsKnownField reports whether name belongs to the fixed field set.
func IsKnownField(name string) bool {
	return knownFields[name]
}

// ExtractedRecord is the sparse identity-document record produced by the
// field extractor. Absent fields are omitted, never stored as "".
type ExtractedRecord map[string]string

// Get returns the value of field and whether it is present.
func (r ExtractedRecord) Get(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}

// Clone returns an independent copy of the record.
func (r ExtractedRecord) Clone() ExtractedRecord {
	out := make(ExtractedRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// RecognitionResult is the raw OCR output for a single document.
type RecognitionResult struct {
	Text       string  `json:"text"`
	Progress   int     `json:"progress"`
	Confidence float64 `json:"confidence"`
}
