package tennisvl

import (
	"strings"

	"courtside-backend/lib/htmlutil"
	"courtside-backend/lib/textutil"
)

// ExtractPlayers pulls player records out of a search-results page.
//
// Profile links are enumerated in document order and deduplicated by the
// embedded player id (first occurrence wins). Since the card markup has
// no stable container element, a bounded window of markup around each
// link stands in for "the enclosing card"; name, club, and ranking are
// independently extracted from that window and any field not found is
// left absent rather than invented. The one exception is the name, which
// falls back to the query name so the record is at least attributable.
func ExtractPlayers(doc, firstName, lastName string) []PlayerRecord {
	out := []PlayerRecord{}
	seen := map[string]bool{}

	for _, loc := range patterns.profileLink.FindAllStringSubmatchIndex(doc, -1) {
		id := doc[loc[2]:loc[3]]
		if seen[id] {
			continue
		}
		seen[id] = true

		card := htmlutil.Window(doc, loc[0], cardContextBefore, cardContextAfter)

		record := PlayerRecord{ExternalUserID: id}

		if m := patterns.cardName.FindStringSubmatch(card); m != nil {
			record.Name = htmlutil.NormalizeText(m[1])
		}
		if record.Name == "" {
			record.Name = strings.TrimSpace(firstName + " " + lastName)
		}

		if m := patterns.cardClub.FindStringSubmatch(card); m != nil {
			club := m[1]
			// the club span doubles as a location label past the pipe
			if i := strings.Index(club, "|"); i >= 0 {
				club = club[:i]
			}
			club = strings.TrimSpace(club)
			if textutil.ValidDisplayText(club, clubBoilerplate) {
				record.Club = club
			}
		}

		if m := patterns.cardRanking.FindStringSubmatch(card); m != nil {
			record.Ranking = m[1]
		}

		out = append(out, record)
	}

	return out
}
