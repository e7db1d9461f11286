// Package visa turns raw OCR text of visa and identity documents into a
// sparse ExtractedRecord. Everything here is pure: no I/O, no shared state.
package visa

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Aashish23092/visa-document-scanner/dto"
)

// Trace records which strategy produced each field.
type Trace map[string]string

// document holds the two working forms of the OCR text.
type document struct {
	// flat is the whole text collapsed onto one line.
	flat string
	// lines holds trimmed lines of at least 3 characters.
	lines []string
}

func newDocument(raw string) *document {
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var lines []string
	for _, l := range strings.Split(raw, "\n") {
		l = strings.Join(strings.Fields(l), " ")
		if utf8.RuneCountInString(l) < 3 {
			continue
		}
		lines = append(lines, l)
	}

	return &document{
		flat:  strings.Join(strings.Fields(raw), " "),
		lines: lines,
	}
}

// strategy is one attempt at finding a field value. Strategies for a field
// are tried in order; the first accepted value wins.
type strategy struct {
	name string
	find func(d *document) (string, bool)
}

// fieldRule binds a field to its strategies and acceptance check.
type fieldRule struct {
	field      string
	strategies []strategy
	accept     func(string) bool
	normalize  func(string) string
}

func (r fieldRule) apply(d *document) (value, source string, ok bool) {
	for _, s := range r.strategies {
		v, found := s.find(d)
		if !found {
			continue
		}
		if r.normalize != nil {
			v = r.normalize(v)
		}
		if r.accept != nil && !r.accept(v) {
			continue
		}
		return v, s.name, true
	}
	return "", "", false
}

// fieldRules are evaluated in this order after names and before dates.
var fieldRules = []fieldRule{
	visaNumberRule,
	passportNumberRule,
	emiratesIDRule,
	laborCardNumberRule,
	nationalityRule,
	maritalStatusRule,
	professionRule,
	genderRule,
	sponsorRule,
	visaTypeRule,
	placeOfBirthRule,
	salaryRule,
}

// Extract parses raw OCR text into an ExtractedRecord. It always succeeds;
// a record with few or no fields is a valid result.
func Extract(raw string) dto.ExtractedRecord {
	rec, _ := ExtractWithTrace(raw)
	return rec
}

// ExtractWithTrace is Extract plus the name of the strategy behind each field.
func ExtractWithTrace(raw string) (dto.ExtractedRecord, Trace) {
	d := newDocument(raw)
	rec := dto.ExtractedRecord{}
	trace := Trace{}

	if first, last, source, ok := extractName(d); ok {
		rec[dto.FieldFirstName] = first
		rec[dto.FieldLastName] = last
		trace[dto.FieldFirstName] = source
		trace[dto.FieldLastName] = source
	}

	for _, rule := range fieldRules {
		if v, source, ok := rule.apply(d); ok {
			rec[rule.field] = v
			trace[rule.field] = source
		}
	}

	for field, a := range classifyDates(d) {
		rec[field] = a.value
		trace[field] = a.source
	}

	CleanRecord(rec)
	for field := range trace {
		if _, ok := rec[field]; !ok {
			delete(trace, field)
		}
	}
	return rec, trace
}

var (
	reDisallowed = regexp.MustCompile(`[^\w\s\-/&.,()]`)
	reSpaces     = regexp.MustCompile(`\s+`)
)

// CleanValue strips characters outside [\w\s-/&.,()], collapses whitespace
// and trims. Applying it twice gives the same result as applying it once.
func CleanValue(v string) string {
	v = reDisallowed.ReplaceAllString(v, "")
	v = reSpaces.ReplaceAllString(v, " ")
	return strings.TrimSpace(v)
}

// CleanRecord cleans every value in place and deletes fields that end up
// empty or are not part of the fixed field set.
func CleanRecord(rec dto.ExtractedRecord) dto.ExtractedRecord {
	for field, v := range rec {
		if !dto.IsKnownField(field) {
			delete(rec, field)
			continue
		}
		v = CleanValue(v)
		if v == "" {
			delete(rec, field)
			continue
		}
		rec[field] = v
	}
	return rec
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// titleCase capitalizes each space separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func hasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// labeled builds a strategy that returns the first capture group of re
// matched against the flat text.
func labeled(name string, re *regexp.Regexp) strategy {
	return strategy{
		name: name,
		find: func(d *document) (string, bool) {
			m := re.FindStringSubmatch(d.flat)
			if len(m) < 2 || strings.TrimSpace(m[1]) == "" {
				return "", false
			}
			return strings.TrimSpace(m[1]), true
		},
	}
}

// labeledRun is like labeled but cuts the captured word run at the first
// word that starts another label.
func labeledRun(name string, re *regexp.Regexp) strategy {
	return strategy{
		name: name,
		find: func(d *document) (string, bool) {
			m := re.FindStringSubmatch(d.flat)
			if len(m) < 2 {
				return "", false
			}
			v := cutAtLabel(m[1])
			return v, v != ""
		},
	}
}

// cutAtLabel keeps the words of run up to the first label word.
func cutAtLabel(run string) string {
	var kept []string
	for _, w := range strings.Fields(run) {
		if labelWords[strings.ToLower(strings.Trim(w, ".,:&/-"))] {
			break
		}
		kept = append(kept, w)
	}
	return strings.Trim(strings.Join(kept, " "), " .,-/&")
}
