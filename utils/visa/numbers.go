package visa

import (
	"regexp"
	"strings"

	"github.com/Aashish23092/visa-document-scanner/dto"
)

var (
	reVisaLabeled     = regexp.MustCompile(`(?i)\b(?:visa|permit|residence)\b[\w\s]{0,20}?(?:number|no|#)\.?\s*:?\s*(\d{10,15})\b`)
	reVisaBare        = regexp.MustCompile(`\b(\d{11,15})\b`)
	reResidencePermit = regexp.MustCompile(`(?i)\b(?:residence|permit)\s*:\s*([A-Z0-9]{8,20})\b`)
	reVisaNumber      = regexp.MustCompile(`^\d{11,15}$`)
)

var visaNumberRule = fieldRule{
	field: dto.FieldVisaNumber,
	strategies: []strategy{
		labeled("visa-labeled", reVisaLabeled),
		labeled("visa-digits", reVisaBare),
		labeled("residence-permit", reResidencePermit),
	},
	accept: reVisaNumber.MatchString,
}

var (
	rePassportLabeled = regexp.MustCompile(`(?i)\bpassport\b[\w\s]{0,15}?(?:number|no|#)\.?\s*:?\s*([A-Z]{1,3}\d{6,9})\b`)
	rePassportTwo     = regexp.MustCompile(`\b([A-Z]{2}\d{7,9})\b`)
	rePassportOne     = regexp.MustCompile(`\b([A-Z]\d{8})\b`)
	rePassportNumber  = regexp.MustCompile(`^[A-Z]{1,3}\d{6,9}$`)
)

var passportNumberRule = fieldRule{
	field: dto.FieldPassportNumber,
	strategies: []strategy{
		labeled("passport-labeled", rePassportLabeled),
		labeled("passport-two-letters", rePassportTwo),
		labeled("passport-one-letter", rePassportOne),
	},
	normalize: func(v string) string {
		return strings.ToUpper(CleanValue(v))
	},
	accept: rePassportNumber.MatchString,
}

var (
	reEmiratesID     = regexp.MustCompile(`\b(784)[-\s]?(\d{4})[-\s]?(\d{7})[-\s]?(\d)\b`)
	reEmiratesIDForm = regexp.MustCompile(`^784-\d{4}-\d{7}-\d$`)
)

var emiratesIDRule = fieldRule{
	field: dto.FieldEmiratesID,
	strategies: []strategy{
		{
			name: "emirates-id",
			find: func(d *document) (string, bool) {
				m := reEmiratesID.FindStringSubmatch(d.flat)
				if m == nil {
					return "", false
				}
				return strings.Join(m[1:], "-"), true
			},
		},
	},
	accept: reEmiratesIDForm.MatchString,
}

var reLaborCard = regexp.MustCompile(`(?i)\blabou?r\s*card\s*(?:number|no|#)?\.?\s*:?\s*(\d{6,14})\b`)

var laborCardNumberRule = fieldRule{
	field: dto.FieldLaborCardNumber,
	strategies: []strategy{
		labeled("labor-card-labeled", reLaborCard),
	},
}

var reSalary = regexp.MustCompile(`(?i)\b(?:basic\s+|total\s+|monthly\s+)?salary\s*:?\s*(?:AED|Dhs?\.?)?\s*(\d{1,3}(?:,\d{3})+|\d+)(?:\.\d{1,2})?\b`)

var salaryRule = fieldRule{
	field: dto.FieldSalary,
	strategies: []strategy{
		labeled("salary-labeled", reSalary),
	},
	normalize: func(v string) string {
		return strings.ReplaceAll(v, ",", "")
	},
	accept: func(v string) bool {
		return v != "" && v != "0"
	},
}
