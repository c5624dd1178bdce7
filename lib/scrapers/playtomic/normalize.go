package playtomic

import (
	"math"
	"strings"
	"time"

	"courtside-backend/lib/probe"
)

// Candidate paths per logical field, in strict precedence order. The same
// fact shows up at different nesting depths depending on which endpoint
// version served the payload; the first path holding a usable value wins
// and later ones are never consulted.
var (
	venueNamePaths = [][]string{
		{"location"},
		{"tenant", "tenant_name"},
		{"tenant", "name"},
	}
	courtNamePaths = [][]string{
		{"resource_name"},
		{"resource", "name"},
	}
	surfaceTypePaths = [][]string{
		{"resource_properties", "surface_type"},
		{"surface"},
	}
	totalPricePaths = [][]string{
		{"price"},
		{"teams", "0", "players", "0", "price"},
		{"registration_info", "slot_list", "0", "price"},
	}
	pricePerPersonPaths = [][]string{
		{"price_per_person"},
	}
	totalSpotsPaths = [][]string{
		{"slots"},
		{"max_players"},
	}
	matchTypePaths = [][]string{
		{"match_type"},
		{"type"},
	}
	startDatePaths = [][]string{
		{"start_date"},
		{"start"},
	}
	endDatePaths = [][]string{
		{"end_date"},
		{"end"},
	}
)

const defaultTotalSpots = 4

var timestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NormalizeMatch assembles one MatchDetails record from one authoritative
// API payload, or from several captured network payloads applied in
// capture order. Per field, the first payload (and within it the first
// candidate path) yielding a value wins; later payloads only fill fields
// earlier ones left empty. Missing data degrades to defaults, never to an
// error.
func NormalizeMatch(matchId string, payloads ...probe.Object) MatchDetails {
	details := MatchDetails{
		MatchID:      matchId,
		MatchType:    "friendly",
		TotalSpots:   defaultTotalSpots,
		Participants: []Participant{},
	}

	fillString := func(dst *string, paths ...[]string) {
		if *dst != "" {
			return
		}
		for _, o := range payloads {
			if v := o.FirstString(paths...); v != "" {
				*dst = v
				return
			}
		}
	}
	fillFloat := func(dst **float64, paths ...[]string) {
		if *dst != nil {
			return
		}
		for _, o := range payloads {
			if v, ok := o.FirstFloat(paths...); ok {
				*dst = &v
				return
			}
		}
	}

	fillString(&details.VenueName, venueNamePaths...)
	fillString(&details.CourtName, courtNamePaths...)
	fillString(&details.SurfaceType, surfaceTypePaths...)
	fillFloat(&details.TotalPrice, totalPricePaths...)
	fillFloat(&details.PricePerPerson, pricePerPersonPaths...)

	matchType := ""
	fillString(&matchType, matchTypePaths...)
	if matchType != "" {
		details.MatchType = strings.ToLower(matchType)
	}

	for _, o := range payloads {
		if v, ok := o.FirstInt(totalSpotsPaths...); ok && v > 0 {
			details.TotalSpots = v
			break
		}
	}

	fillString(&details.MatchDate, startDatePaths...)
	endDate := ""
	fillString(&endDate, endDatePaths...)
	details.deriveTemporal(endDate)

	for _, o := range payloads {
		if details.fillLocation(o) {
			break
		}
	}

	for _, o := range payloads {
		if details.fillRoster(o) {
			break
		}
	}

	if details.PricePerPerson == nil && details.TotalPrice != nil && details.TotalSpots > 0 {
		v := math.Round(*details.TotalPrice/float64(details.TotalSpots)*100) / 100
		details.PricePerPerson = &v
	}

	return details
}

// deriveTemporal splits the raw start timestamp into the date and
// time-of-day fields and derives the duration. Duration only exists when
// both ends parse; an unparseable start stays in MatchDate as-is rather
// than being discarded.
func (d *MatchDetails) deriveTemporal(endDate string) {
	start, startOk := parseTimestamp(d.MatchDate)
	if startOk {
		if d.MatchTime == "" {
			d.MatchTime = start.Format("15:04")
		}
		d.MatchDate = start.Format("2006-01-02")
	}

	end, endOk := parseTimestamp(endDate)
	if startOk && endOk && d.DurationMinutes == nil {
		minutes := int(math.Round(end.Sub(start).Minutes()))
		d.DurationMinutes = &minutes
	}
}

// fillLocation pulls the venue address out of tenant.address: a joined
// street/postal/city string with no dangling separators, plus city and
// coordinates as independent fields. Reports whether anything was found.
func (d *MatchDetails) fillLocation(o probe.Object) bool {
	addr := o.Object("tenant", "address")
	if addr == nil {
		return false
	}

	if d.Location == "" {
		var parts []string
		for _, key := range []string{"street", "postal_code", "city"} {
			if v := addr.String(key); v != "" {
				parts = append(parts, v)
			}
		}
		d.Location = strings.Join(parts, ", ")
	}
	if d.City == "" {
		d.City = addr.String("city")
	}
	if d.Latitude == nil {
		if lat, ok := addr.Float("coordinate", "lat"); ok {
			d.Latitude = &lat
		}
	}
	if d.Longitude == nil {
		if lon, ok := addr.Float("coordinate", "lon"); ok {
			d.Longitude = &lon
		}
	}

	return d.Location != "" || d.City != "" || d.Latitude != nil
}

// fillRoster flattens teams[].players[] in team-then-player order and
// resolves per-player payment info against registration_info
// .registrations[] by user id. The first payload with any players at all
// supplies the whole roster.
func (d *MatchDetails) fillRoster(o probe.Object) bool {
	teams := o.Slice("teams")
	if len(teams) == 0 {
		return false
	}

	registrations := o.Slice("registration_info", "registrations")

	registered := 0
	var participants []Participant
	for _, rawTeam := range teams {
		team, ok := rawTeam.(map[string]any)
		if !ok {
			continue
		}
		teamObj := probe.Object(team)
		teamId := teamObj.String("team_id")

		players := teamObj.Slice("players")
		registered += len(players)

		for _, rawPlayer := range players {
			player, ok := rawPlayer.(map[string]any)
			if !ok {
				continue
			}
			playerObj := probe.Object(player)

			p := Participant{
				ExternalUserID: playerObj.String("user_id"),
				Name:           playerObj.String("name"),
				TeamID:         teamId,
				Gender:         playerObj.String("gender"),
				PaymentStatus:  PaymentPending,
			}
			if v, ok := playerObj.Float("level_value"); ok {
				p.LevelValue = &v
			}
			if v, ok := playerObj.Float("level_confidence"); ok {
				p.LevelConfidence = &v
			}
			p.resolveRegistration(registrations)

			participants = append(participants, p)
		}
	}

	if len(participants) == 0 {
		return false
	}

	d.Participants = participants
	if registered > 0 {
		d.PlayersRegistered = registered
	}
	if d.OrganizerName == "" {
		// first player of the first team organizes, by convention
		d.OrganizerName = participants[0].Name
	}
	return true
}

// resolveRegistration looks the participant up in the registration
// records by user id; first match wins. No match leaves payment fields
// at their defaults.
func (p *Participant) resolveRegistration(registrations []any) {
	for _, raw := range registrations {
		reg, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		regObj := probe.Object(reg)
		if regObj.String("user_id") != p.ExternalUserID || p.ExternalUserID == "" {
			continue
		}

		if v, ok := regObj.Float("payment_price"); ok {
			p.Price = &v
		}
		if regObj.String("payment_date") != "" {
			p.PaymentStatus = PaymentPaid
		}
		p.RegistrationDate = regObj.String("registration_date")
		return
	}
}
