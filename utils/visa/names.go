package visa

import (
	"regexp"
	"strings"
)

// nameStrategy yields a given name and a surname.
type nameStrategy struct {
	name string
	find func(d *document) (first, last string, ok bool)
}

var nameStrategies = []nameStrategy{
	{"labeled", labeledName},
	{"name-line", nameLine},
	{"first-lines", firstLinesName},
}

func extractName(d *document) (first, last, source string, ok bool) {
	for _, s := range nameStrategies {
		if f, l, found := s.find(d); found {
			return capitalize(f), capitalize(l), s.name, true
		}
	}
	return "", "", "", false
}

// labeledNamePattern captures two words; surnameFirst marks patterns whose
// first capture is the surname.
type labeledNamePattern struct {
	re           *regexp.Regexp
	surnameFirst bool
	// checkPrefix rejects matches preceded by words such as "sponsor".
	checkPrefix bool
}

var labeledNamePatterns = []labeledNamePattern{
	{
		re: regexp.MustCompile(`(?i)\b(?:first|given)\s*names?\s*[:\-]?\s*([a-z]+)\b.{0,60}?\b(?:last\s*name|surname|family\s*name)\s*[:\-]?\s*([a-z]+)\b`),
	},
	{
		re:           regexp.MustCompile(`(?i)\b(?:last\s*name|surname|family\s*name)\s*[:\-]?\s*([a-z]+)\b.{0,60}?\b(?:first|given)\s*names?\s*[:\-]?\s*([a-z]+)\b`),
		surnameFirst: true,
	},
	{
		re: regexp.MustCompile(`(?i)\b(?:full\s*name|holder(?:'s)?\s*name)\s*[:\-]?\s*([a-z]+)\s+([a-z]+)\b`),
	},
	{
		re:          regexp.MustCompile(`(?i)\bname\s*:\s*([a-z]+)\s+([a-z]+)\b`),
		checkPrefix: true,
	},
}

// namePrefixStops are words that make a "Name:" label belong to someone else.
var namePrefixStops = toSet(
	"sponsor", "sponsors", "company", "employer", "establishment", "father",
	"mother", "spouse", "husband", "wife", "user", "first", "last", "given",
	"family", "full", "holder", "holders", "sur",
)

var reLastWord = regexp.MustCompile(`([A-Za-z']+)\W*$`)

func labeledName(d *document) (string, string, bool) {
	for _, p := range labeledNamePatterns {
		for _, idx := range p.re.FindAllStringSubmatchIndex(d.flat, -1) {
			if p.checkPrefix {
				if m := reLastWord.FindStringSubmatch(d.flat[:idx[0]]); m != nil {
					if namePrefixStops[strings.ToLower(strings.TrimSuffix(m[1], "'s"))] {
						continue
					}
				}
			}
			a := d.flat[idx[2]:idx[3]]
			b := d.flat[idx[4]:idx[5]]
			if !isNameWord(a) || !isNameWord(b) {
				continue
			}
			if p.surnameFirst {
				return b, a, true
			}
			return a, b, true
		}
	}
	return "", "", false
}

// isNameWord rejects single letters and label words captured by accident.
func isNameWord(w string) bool {
	return len(w) >= 2 && !labelWords[strings.ToLower(w)]
}

var reTwoCapitalWords = regexp.MustCompile(`^([A-Z][A-Za-z]+)\s+([A-Z][A-Za-z]+)$`)

// maxNameLineCandidates bounds how many matching lines the line scan tries.
const maxNameLineCandidates = 3

func nameLine(d *document) (string, string, bool) {
	tried := 0
	for _, line := range d.lines {
		m := reTwoCapitalWords.FindStringSubmatch(line)
		if m == nil || containsAny(line, nameStopWords) || containsAny(line, nameLineStopWords) || reJobTitle.MatchString(line) {
			continue
		}
		tried++
		if runeLen(m[1]) <= 20 && runeLen(m[2]) <= 20 {
			return m[1], m[2], true
		}
		if tried >= maxNameLineCandidates {
			break
		}
	}
	return "", "", false
}

var reShortCapitalWords = regexp.MustCompile(`^([A-Z][A-Za-z]{1,14})\s+([A-Z][A-Za-z]{1,14})$`)

// firstLinesLimit is how many leading lines the last name strategy reads.
const firstLinesLimit = 15

func firstLinesName(d *document) (string, string, bool) {
	for i, line := range d.lines {
		if i >= firstLinesLimit {
			break
		}
		m := reShortCapitalWords.FindStringSubmatch(line)
		if m == nil || containsAny(line, firstLinesStopWords) || reJobTitle.MatchString(line) {
			continue
		}
		return m[1], m[2], true
	}
	return "", "", false
}

// containsAny reports whether any word of line, lower-cased, is in set.
func containsAny(line string, set map[string]bool) bool {
	for _, w := range strings.Fields(line) {
		if set[strings.ToLower(w)] {
			return true
		}
	}
	return false
}
