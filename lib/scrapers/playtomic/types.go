package playtomic

// MatchDetails is the canonical match record assembled from whatever the
// upstream surfaces happened to expose. Every field is independently
// optional; absence never invalidates the record.
type MatchDetails struct {
	MatchID   string `json:"match_id"`
	MatchType string `json:"match_type"`

	MatchDate       string `json:"match_date,omitempty"`
	MatchTime       string `json:"match_time,omitempty"`
	DurationMinutes *int   `json:"duration_minutes,omitempty"`

	VenueName string   `json:"venue_name,omitempty"`
	Location  string   `json:"location,omitempty"`
	City      string   `json:"city,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	PricePerPerson *float64 `json:"price_per_person,omitempty"`
	TotalPrice     *float64 `json:"total_price,omitempty"`

	CourtName   string `json:"court_name,omitempty"`
	SurfaceType string `json:"surface_type,omitempty"`

	PlayersRegistered int           `json:"players_registered"`
	TotalSpots        int           `json:"total_spots"`
	OrganizerName     string        `json:"organizer_name,omitempty"`
	Participants      []Participant `json:"participants"`
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

type Participant struct {
	ExternalUserID   string        `json:"external_user_id"`
	Name             string        `json:"name"`
	TeamID           string        `json:"team_id,omitempty"`
	Gender           string        `json:"gender,omitempty"`
	LevelValue       *float64      `json:"level_value,omitempty"`
	LevelConfidence  *float64      `json:"level_confidence,omitempty"`
	Price            *float64      `json:"price,omitempty"`
	PaymentStatus    PaymentStatus `json:"payment_status"`
	RegistrationDate string        `json:"registration_date,omitempty"`
}
