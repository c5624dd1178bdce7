package playtomic

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Rendered-page-text patterns: the last resort when no structured payload
// yielded anything. Explicitly the least reliable tier; each capture is
// independently optional.
var (
	textPriceRegex = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*€`)
	textDateRegex  = regexp.MustCompile(`\b(\d{4}[/-]\d{1,2}[/-]\d{1,2}|\d{1,2}[/-]\d{1,2}[/-]\d{2,4})\b`)
	textTimeRegex  = regexp.MustCompile(`\b(\d{1,2}:\d{2})\b`)
	textCountRegex = regexp.MustCompile(`(\d{1,2})\s*(?:/|de)\s*(\d{1,2})\b`)
	textDurRegex   = regexp.MustCompile(`(?i)(\d+)\s*min(?:s|utes|utos|uten)?\b`)
)

// TextExtract holds whatever loose facts could be pattern-matched out of
// rendered page text.
type TextExtract struct {
	Price           *float64
	Date            string
	Time            string
	Registered      int
	Spots           int
	DurationMinutes *int
}

// day-first layouts come before month-first: the rendered pages are
// European-locale
var textDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"02/01/06",
}

// normalizeTextDate reformats a matched date string to ISO so both
// extraction tiers report dates the same way. An unparseable match is
// kept as-is rather than discarded.
func normalizeTextDate(s string) string {
	for _, layout := range textDateLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed.Format("2006-01-02")
		}
	}
	return s
}

func ExtractFromPageText(text string) TextExtract {
	var out TextExtract

	if m := textPriceRegex.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err == nil {
			out.Price = &v
		}
	}
	if m := textDateRegex.FindStringSubmatch(text); m != nil {
		out.Date = normalizeTextDate(m[1])
	}
	if m := textTimeRegex.FindStringSubmatch(text); m != nil {
		out.Time = m[1]
	}
	// dates also contain digit/digit runs, so keep the first candidate
	// that looks like a plausible player count
	for _, m := range textCountRegex.FindAllStringSubmatch(text, -1) {
		registered, err1 := strconv.Atoi(m[1])
		spots, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil && spots > 0 && registered <= spots {
			out.Registered = registered
			out.Spots = spots
			break
		}
	}
	if m := textDurRegex.FindStringSubmatch(text); m != nil {
		v, err := strconv.Atoi(m[1])
		if err == nil && v > 0 {
			out.DurationMinutes = &v
		}
	}

	return out
}

// ApplyTextExtract fills still-unset fields of a match record from the
// page-text tier. Values resolved from structured payloads are never
// overwritten.
func ApplyTextExtract(d *MatchDetails, t TextExtract) {
	if d.PricePerPerson == nil && t.Price != nil {
		d.PricePerPerson = t.Price
	}
	if d.MatchDate == "" {
		d.MatchDate = t.Date
	}
	if d.MatchTime == "" {
		d.MatchTime = t.Time
	}
	if d.PlayersRegistered == 0 && t.Registered > 0 {
		d.PlayersRegistered = t.Registered
	}
	if d.TotalSpots == defaultTotalSpots && t.Spots > 0 {
		d.TotalSpots = t.Spots
	}
	if d.DurationMinutes == nil && t.DurationMinutes != nil {
		d.DurationMinutes = t.DurationMinutes
	}
}
