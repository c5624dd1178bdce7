package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

// ValidDisplayText reports whether a scraped candidate string is worth
// keeping: long enough to be a real value and not one of the known
// boilerplate phrases (navigation chrome, calls to action).
func ValidDisplayText(s string, boilerplate []string) bool {
	s = strings.TrimSpace(s)
	if len(s) <= 2 {
		return false
	}
	lower := strings.ToLower(s)
	for _, phrase := range boilerplate {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}
