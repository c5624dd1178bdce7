package tennisvl

import "regexp"

// Every site-specific pattern lives in this one table. The portal's
// markup is undocumented and changes without notice; when it does, this
// is the only place to edit.
var patterns = struct {
	// search-results cards
	profileLink *regexp.Regexp
	cardName    *regexp.Regexp
	cardClub    *regexp.Regexp
	cardRanking *regexp.Regexp

	// profile/dashboard ranking: the loose tiers only. the strict tier
	// selects on the stable klassement classes with goquery instead.
	rankingScore *regexp.Regexp
	scoreToken   *regexp.Regexp

	// profile club candidates, tried in order
	clubCandidates []*regexp.Regexp
}{
	profileLink: regexp.MustCompile(`href="[^"]*spelersdashboard[^"]*[?&;](?:amp;)?spelerId=(\d+)[^"]*"`),
	cardName:    regexp.MustCompile(`(?s)<h5[^>]*>(.*?)</h5>`),
	cardClub:    regexp.MustCompile(`icon-sport-[a-z]+"[^>]*></i>\s*<span[^>]*>([^<]*)</span>`),
	cardRanking: regexp.MustCompile(`<b[^>]*>\s*(P\d+)\s*</b>`),

	rankingScore: regexp.MustCompile(`<span[^>]*class="[^"]*klassement__score[^"]*"[^>]*>\s*(P\d+(?:\.\d+)?)`),
	scoreToken:   regexp.MustCompile(`\b(P\d+(?:\.\d+)?)\b`),

	clubCandidates: []*regexp.Regexp{
		regexp.MustCompile(`(?s)<div[^>]*class="[^"]*club-naam[^"]*"[^>]*>(.*?)</div>`),
		regexp.MustCompile(`data-clubnaam="([^"]*)"`),
		regexp.MustCompile(`(?s)<span[^>]*class="[^"]*speler__club[^"]*"[^>]*>(.*?)</span>`),
	},
}

// clubBoilerplate are phrases that mark a candidate as navigation chrome
// or a call to action rather than an actual club name.
var clubBoilerplate = []string{
	"lid worden",
	"word lid",
	"inloggen",
	"registreer",
}

const (
	// the enclosing result card is assumed to start within this many
	// characters before the profile link
	cardContextBefore = 2000
	cardContextAfter  = 300

	// how far after a sport label's literal text a loose score token is
	// still considered associated with that sport
	proximityWindow = 600
)
