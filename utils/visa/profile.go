package visa

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Aashish23092/visa-document-scanner/dto"
)

var (
	reMaritalLabeled = regexp.MustCompile(`(?i)\b(?:marital\s+)?status\s*:\s*([a-z]+)`)
	reMaritalBare    = regexp.MustCompile(`\b(SINGLE|MARRIED|DIVORCED|WIDOWED)\b(?:\s+([A-Z]+))?`)
)

// maritalFollowers are words after a bare marital keyword that show it is
// not a marital status ("SINGLE ENTRY").
var maritalFollowers = toSet("entry", "journey", "trip", "use", "visit")

var maritalStatusRule = fieldRule{
	field: dto.FieldMaritalStatus,
	strategies: []strategy{
		{
			name: "marital-labeled",
			find: func(d *document) (string, bool) {
				for _, m := range reMaritalLabeled.FindAllStringSubmatch(d.flat, -1) {
					if s, ok := maritalStatuses[strings.ToLower(m[1])]; ok {
						return s, true
					}
				}
				return "", false
			},
		},
		{
			name: "marital-keyword",
			find: func(d *document) (string, bool) {
				for _, m := range reMaritalBare.FindAllStringSubmatch(d.flat, -1) {
					if maritalFollowers[strings.ToLower(m[2])] {
						continue
					}
					return maritalStatuses[strings.ToLower(m[1])], true
				}
				return "", false
			},
		},
	},
}

var (
	reProfessionLabeled = regexp.MustCompile(`(?i)\b(?:profession|occupation|job\s+title|designation|position)\s*[:\-]\s*([a-z][a-z/&.\- ]{1,60})`)
	reProfessionWorkAs  = regexp.MustCompile(`(?i)\b(?:work|employed|working)\s+as\s*:?\s*(?:an?\s+)?([a-z][a-z/&.\- ]{1,60})`)
)

// reJobTitle matches jobTitles literally, longest first.
var reJobTitle = func() *regexp.Regexp {
	titles := append([]string(nil), jobTitles...)
	sort.SliceStable(titles, func(i, j int) bool { return len(titles[i]) > len(titles[j]) })
	for i, t := range titles {
		titles[i] = strings.ReplaceAll(regexp.QuoteMeta(t), " ", `\s+`)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(titles, "|") + `)\b`)
}()

var professionRule = fieldRule{
	field: dto.FieldProfession,
	strategies: []strategy{
		labeledRun("profession-labeled", reProfessionLabeled),
		labeledRun("profession-work-as", reProfessionWorkAs),
		labeled("profession-title", reJobTitle),
	},
	normalize: titleCase,
	accept: func(v string) bool {
		n := runeLen(v)
		return n >= 3 && n < 50 && !hasDigit(v)
	},
}

var reGender = regexp.MustCompile(`(?i)\b(?:gender|sex)\s*[:/\-]?\s*(male|female|m|f)\b`)

var genderRule = fieldRule{
	field: dto.FieldGender,
	strategies: []strategy{
		labeled("gender-labeled", reGender),
	},
	normalize: func(v string) string {
		switch strings.ToLower(v) {
		case "m", "male":
			return "Male"
		case "f", "female":
			return "Female"
		}
		return ""
	},
	accept: func(v string) bool { return v != "" },
}

var reSponsor = regexp.MustCompile(`(?i)\bsponsor(?:'s)?(?:\s+name)?\s*[:\-]\s*([a-z0-9][a-z0-9&.,()'\- ]{1,80})`)

var sponsorRule = fieldRule{
	field: dto.FieldSponsor,
	strategies: []strategy{
		labeledRun("sponsor-labeled", reSponsor),
	},
	normalize: func(v string) string {
		return strings.TrimSpace(v)
	},
	accept: func(v string) bool { return runeLen(v) >= 2 },
}

var reVisaType = regexp.MustCompile(`(?i)\b(?:visa|permit)\s+type\s*[:\-]?\s*([a-z][a-z\- ]{1,40})`)

var visaTypeRule = fieldRule{
	field: dto.FieldVisaType,
	strategies: []strategy{
		labeledRun("visa-type-labeled", reVisaType),
	},
	normalize: titleCase,
	accept: func(v string) bool {
		return runeLen(v) >= 3 && !hasDigit(v)
	},
}

var rePlaceOfBirth = regexp.MustCompile(`(?i)\b(?:place\s+of\s+birth|birth\s*place|pob)\s*[:\-]?\s*([a-z][a-z\- ]{1,40})`)

var placeOfBirthRule = fieldRule{
	field: dto.FieldPlaceOfBirth,
	strategies: []strategy{
		labeledRun("place-of-birth-labeled", rePlaceOfBirth),
	},
	normalize: titleCase,
	accept: func(v string) bool {
		return runeLen(v) >= 2 && !hasDigit(v)
	},
}
