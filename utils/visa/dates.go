package visa

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/Aashish23092/visa-document-scanner/dto"
)

const (
	// Context inspected around each date occurrence.
	dateContextBefore = 100
	dateContextAfter  = 50

	// Birth years accepted by the chronological fallback.
	birthYearMin = 1950
	birthYearMax = 2010
)

const datePattern = `\d{1,2}[-/]\d{1,2}[-/]\d{4}|\d{4}[-/]\d{1,2}[-/]\d{1,2}`

var reDate = regexp.MustCompile(`\b(?:` + datePattern + `)\b`)

// dateCategory is one of the three dates classified from context.
type dateCategory struct {
	field    string
	keywords *regexp.Regexp
}

var dateCategories = []dateCategory{
	{dto.FieldDateOfBirth, regexp.MustCompile(`(?i)\b(?:date\s+of\s+birth|birth\s+date|dob|born)\b`)},
	{dto.FieldIssueDate, regexp.MustCompile(`(?i)\b(?:issue\s+date|issued\s+on|date\s+of\s+issue|from|start)\b`)},
	{dto.FieldExpiryDate, regexp.MustCompile(`(?i)\b(?:expiry\s+date|expires\s+on|expir\w*|valid\s+until|until|to|end)\b`)},
}

// labeledDate pins a date to a document-specific expiry field before the
// generic classification runs.
type labeledDate struct {
	field string
	re    *regexp.Regexp
}

var labeledDates = []labeledDate{
	{dto.FieldPassportExpiry, regexp.MustCompile(`(?i)\bpassport\s+(?:expiry|expiration|valid\s+until)(?:\s+date)?\s*[:\-]?\s*(` + datePattern + `)\b`)},
	{dto.FieldEmiratesIDExpiry, regexp.MustCompile(`(?i)\b(?:emirates\s+id|eid)\s+(?:card\s+)?(?:expiry|expiration)(?:\s+date)?\s*[:\-]?\s*(` + datePattern + `)\b`)},
	{dto.FieldLaborCardExpiry, regexp.MustCompile(`(?i)\blabou?r\s+card\s+(?:expiry|expiration)(?:\s+date)?\s*[:\-]?\s*(` + datePattern + `)\b`)},
}

type assignment struct {
	value  string
	source string
}

type dateOccurrence struct {
	value      string
	start, end int
}

// parseDate accepts D/M/YYYY, M/D/YYYY when the day cannot be a month, and
// YYYY/M/D. Impossible calendar dates are rejected.
func parseDate(s string) (time.Time, bool) {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return time.Time{}, false
	}
	n := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, false
		}
		n[i] = v
	}

	var year, month, day int
	switch {
	case len(parts[0]) == 4:
		year, month, day = n[0], n[1], n[2]
	case n[1] > 12 && n[0] <= 12:
		year, month, day = n[2], n[0], n[1]
	default:
		year, month, day = n[2], n[1], n[0]
	}

	if year < 1900 || year > 2100 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// classifyDates assigns dateOfBirth, issueDate and expiryDate from keyword
// context, then fills gaps chronologically. The labeled expiry fields are
// resolved first and their dates are not reused.
func classifyDates(d *document) map[string]assignment {
	out := make(map[string]assignment)
	used := make(map[string]bool)

	for _, ld := range labeledDates {
		m := ld.re.FindStringSubmatch(d.flat)
		if m == nil {
			continue
		}
		if _, ok := parseDate(m[1]); !ok || used[m[1]] {
			continue
		}
		out[ld.field] = assignment{m[1], "date-labeled"}
		used[m[1]] = true
	}

	var occurrences []dateOccurrence
	for _, idx := range reDate.FindAllStringIndex(d.flat, -1) {
		v := d.flat[idx[0]:idx[1]]
		if _, ok := parseDate(v); !ok {
			continue
		}
		occurrences = append(occurrences, dateOccurrence{v, idx[0], idx[1]})
	}

	for _, occ := range occurrences {
		if used[occ.value] {
			continue
		}
		field, ok := nearestCategory(d.flat, occ)
		if !ok {
			continue
		}
		if _, taken := out[field]; taken {
			continue
		}
		out[field] = assignment{occ.value, "date-context"}
		used[occ.value] = true
	}

	fillChronologically(occurrences, used, out)
	return out
}

// nearestCategory returns the category whose keyword sits closest to the
// date: first looking back up to dateContextBefore characters, then ahead
// up to dateContextAfter.
func nearestCategory(flat string, occ dateOccurrence) (string, bool) {
	from := max(0, occ.start-dateContextBefore)
	before := flat[from:occ.start]

	best, bestPos := "", -1
	for _, c := range dateCategories {
		for _, idx := range c.keywords.FindAllStringIndex(before, -1) {
			if idx[1] > bestPos {
				best, bestPos = c.field, idx[1]
			}
		}
	}
	if best != "" {
		return best, true
	}

	to := min(len(flat), occ.end+dateContextAfter)
	after := flat[occ.end:to]
	bestPos = len(after) + 1
	for _, c := range dateCategories {
		if idx := c.keywords.FindStringIndex(after); idx != nil && idx[0] < bestPos {
			best, bestPos = c.field, idx[0]
		}
	}
	return best, best != ""
}

// fillChronologically sorts every valid date: the earliest with a birth
// year in range is the date of birth, the second to last the issue date and
// the last the expiry date. Only unset fields are filled, and a date already
// assigned to a field is not taken again.
func fillChronologically(occurrences []dateOccurrence, used map[string]bool, out map[string]assignment) {
	type dated struct {
		value string
		t     time.Time
	}
	seen := make(map[string]bool)
	var dates []dated
	for _, occ := range occurrences {
		if seen[occ.value] {
			continue
		}
		seen[occ.value] = true
		t, _ := parseDate(occ.value)
		dates = append(dates, dated{occ.value, t})
	}
	sort.SliceStable(dates, func(i, j int) bool { return dates[i].t.Before(dates[j].t) })

	take := func(field string, dd dated) {
		if _, set := out[field]; set || used[dd.value] {
			return
		}
		out[field] = assignment{dd.value, "date-chronological"}
		used[dd.value] = true
	}

	for _, dd := range dates {
		if y := dd.t.Year(); y >= birthYearMin && y <= birthYearMax {
			take(dto.FieldDateOfBirth, dd)
			break
		}
	}
	if n := len(dates); n >= 2 {
		take(dto.FieldIssueDate, dates[n-2])
	}
	if n := len(dates); n >= 1 {
		take(dto.FieldExpiryDate, dates[n-1])
	}
}
