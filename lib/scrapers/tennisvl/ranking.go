package tennisvl

import (
	"strings"

	"courtside-backend/lib/htmlutil"
	"courtside-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// RankingForSport extracts a ranking score for one sport from a
// profile/dashboard page. The markup is inconsistent across pages, so
// three tiers run in order:
//
//  1. strict: a sport/score pair inside a shared klassement item whose
//     sport label exactly matches the target. The klassement classes are
//     stable, so this tier selects structurally.
//  2. loose: a score-shaped token within a bounded window after the
//     sport name's literal text, without container structure.
//  3. global (only when enabled): the first labeled score anywhere on
//     the page, ignoring sport association. This can return another
//     sport's score when the target sport's markup is missing; callers
//     opt in knowingly.
//
// No match at any active tier returns "".
func RankingForSport(doc, sport string, globalFallback bool) string {
	if score := rankingFromKlassement(doc, sport); score != "" {
		return score
	}

	if idx := strings.Index(doc, sport); idx >= 0 {
		window := htmlutil.Window(doc, idx, 0, proximityWindow)
		if m := patterns.scoreToken.FindStringSubmatch(window); m != nil {
			return m[1]
		}
	}

	if globalFallback {
		if m := patterns.rankingScore.FindStringSubmatch(doc); m != nil {
			return m[1]
		}
	}

	return ""
}

func rankingFromKlassement(doc, sport string) string {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return ""
	}

	score := ""
	page.Find("li.klassement__item").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		label := item.Find(".klassement__sport").First()
		if len(label.Nodes) == 0 {
			return true
		}
		if htmlutil.NormalizeText(htmlutil.GetText(label.Nodes[0])) != sport {
			return true
		}

		value := item.Find(".klassement__score").First()
		if len(value.Nodes) == 0 {
			return true
		}
		m := patterns.scoreToken.FindStringSubmatch(htmlutil.GetText(value.Nodes[0]))
		if m == nil {
			return true
		}
		score = m[1]
		return false
	})
	return score
}

// ClubFromProfile extracts the player's club from a profile page by
// trying each candidate pattern in order. A candidate only counts when
// it passes the validity filter (long enough, not a known boilerplate
// phrase); a rejected candidate falls through to the next pattern, but
// the first accepted one ends the chain.
func ClubFromProfile(doc string) string {
	for _, re := range patterns.clubCandidates {
		m := re.FindStringSubmatch(doc)
		if m == nil {
			continue
		}
		club := htmlutil.NormalizeText(m[1])
		if textutil.ValidDisplayText(club, clubBoilerplate) {
			return club
		}
	}
	return ""
}
