package visa

import (
	"regexp"
	"sort"
	"strings"

	"github.com/Aashish23092/visa-document-scanner/dto"
)

var reNationalityLabeled = regexp.MustCompile(`(?i)\b(?:nationality|country\s+of\s+origin|citizen\s+of|citizenship)\s*[:\-]?\s*([a-z]+(?:\s+[a-z]+){0,2})`)

// demonymSet holds every accepted nationality word in canonical form,
// keyed by its lower-case spelling.
var demonymSet = func() map[string]string {
	m := make(map[string]string)
	for _, d := range countryDemonyms {
		m[strings.ToLower(d)] = d
	}
	for _, d := range extraDemonyms {
		m[strings.ToLower(d)] = d
	}
	return m
}()

// reNationalityLiteral matches any known country or nationality name,
// longest names first so "South Africa" wins over "South".
var reNationalityLiteral = func() *regexp.Regexp {
	names := make([]string, 0, len(countryDemonyms)+len(demonymSet))
	for c := range countryDemonyms {
		names = append(names, c)
	}
	for d := range demonymSet {
		names = append(names, d)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}
		return names[i] < names[j]
	})
	for i, n := range names {
		names[i] = strings.ReplaceAll(regexp.QuoteMeta(n), " ", `\s+`)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(names, "|") + `)\b`)
}()

var nationalityRule = fieldRule{
	field: dto.FieldNationality,
	strategies: []strategy{
		{name: "nationality-labeled", find: labeledNationality},
		{name: "nationality-literal", find: literalNationality},
		{name: "nationality-line", find: nationalityLine},
	},
	accept: func(v string) bool {
		n := runeLen(v)
		return n >= 3 && n <= 20 && !hasDigit(v)
	},
}

// CanonicalNationality converts a country name or demonym to the demonym
// form. Unknown words are capitalized as-is.
func CanonicalNationality(s string) string {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if d, ok := countryDemonyms[key]; ok {
		return d
	}
	if d, ok := demonymSet[key]; ok {
		return d
	}
	return titleCase(key)
}

// lookupNationality reports whether s names a known country or nationality.
func lookupNationality(s string) (string, bool) {
	key := strings.ToLower(strings.Join(strings.Fields(s), " "))
	if d, ok := countryDemonyms[key]; ok {
		return d, true
	}
	d, ok := demonymSet[key]
	return d, ok
}

func labeledNationality(d *document) (string, bool) {
	m := reNationalityLabeled.FindStringSubmatch(d.flat)
	if m == nil {
		return "", false
	}
	words := strings.Fields(m[1])
	// Prefer the longest known prefix: "Sri Lanka Date" -> "Sri Lanka".
	for n := len(words); n > 0; n-- {
		if nat, ok := lookupNationality(strings.Join(words[:n], " ")); ok {
			return nat, true
		}
	}
	if labelWords[strings.ToLower(words[0])] {
		return "", false
	}
	return CanonicalNationality(words[0]), true
}

func literalNationality(d *document) (string, bool) {
	var fallback string
	for _, m := range reNationalityLiteral.FindAllString(d.flat, -1) {
		key := strings.ToLower(strings.Join(strings.Fields(m), " "))
		if issuingStateWords[key] {
			if fallback == "" {
				fallback = CanonicalNationality(m)
			}
			continue
		}
		return CanonicalNationality(m), true
	}
	return fallback, fallback != ""
}

func nationalityLine(d *document) (string, bool) {
	for _, line := range d.lines {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "nationality") && !strings.Contains(lower, "country") {
			continue
		}
		for _, w := range strings.Fields(lower) {
			w = strings.Trim(w, ".,:;-/()")
			if nat, ok := basicCountryDemonyms[w]; ok {
				return nat, true
			}
		}
	}
	return "", false
}
