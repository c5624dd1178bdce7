package playtomic

import (
	"encoding/json"
	"testing"

	"courtside-backend/lib/probe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustObject(t *testing.T, raw string) probe.Object {
	t.Helper()
	obj, err := probe.FromJSON([]byte(raw))
	require.NoError(t, err)
	return obj
}

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func TestNormalizeFullPayload(t *testing.T) {
	raw := mustObject(t, `{
		"location": "Padel Club Gent",
		"start_date": "2025-06-14T18:30:00",
		"end_date": "2025-06-14T20:00:00",
		"resource_name": "Court 3",
		"resource_properties": {"surface_type": "artificial_grass"},
		"price": "24.50 €",
		"slots": 4,
		"tenant": {
			"tenant_name": "ignored, location wins",
			"address": {
				"street": "Kortrijksesteenweg 1",
				"postal_code": "9000",
				"city": "Gent",
				"coordinate": {"lat": 51.03, "lon": 3.71}
			}
		},
		"teams": [
			{
				"team_id": "t1",
				"players": [
					{"user_id": "u1", "name": "Jan Peeters", "gender": "MALE", "level_value": 2.3, "level_confidence": 0.8},
					{"user_id": "u2", "name": "Piet Maes"}
				]
			},
			{
				"team_id": "t2",
				"players": [
					{"user_id": "u3", "name": "An Claes"}
				]
			}
		],
		"registration_info": {
			"registrations": [
				{"user_id": "u1", "payment_price": "6.13", "payment_date": "2025-06-01T10:00:00", "registration_date": "2025-05-30T09:00:00"},
				{"user_id": "u3", "registration_date": "2025-06-02T12:00:00"}
			]
		}
	}`)

	got := NormalizeMatch("abc123-def456", raw)

	want := MatchDetails{
		MatchID:           "abc123-def456",
		MatchType:         "friendly",
		MatchDate:         "2025-06-14",
		MatchTime:         "18:30",
		DurationMinutes:   ptrInt(90),
		VenueName:         "Padel Club Gent",
		Location:          "Kortrijksesteenweg 1, 9000, Gent",
		City:              "Gent",
		Latitude:          ptrFloat(51.03),
		Longitude:         ptrFloat(3.71),
		PricePerPerson:    ptrFloat(6.13),
		TotalPrice:        ptrFloat(24.5),
		CourtName:         "Court 3",
		SurfaceType:       "artificial_grass",
		PlayersRegistered: 3,
		TotalSpots:        4,
		OrganizerName:     "Jan Peeters",
		Participants: []Participant{
			{
				ExternalUserID:   "u1",
				Name:             "Jan Peeters",
				TeamID:           "t1",
				Gender:           "MALE",
				LevelValue:       ptrFloat(2.3),
				LevelConfidence:  ptrFloat(0.8),
				Price:            ptrFloat(6.13),
				PaymentStatus:    PaymentPaid,
				RegistrationDate: "2025-05-30T09:00:00",
			},
			{
				ExternalUserID: "u2",
				Name:           "Piet Maes",
				TeamID:         "t1",
				PaymentStatus:  PaymentPending,
			},
			{
				ExternalUserID:   "u3",
				Name:             "An Claes",
				TeamID:           "t2",
				PaymentStatus:    PaymentPending,
				RegistrationDate: "2025-06-02T12:00:00",
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("normalized record mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalizeEmptyPayloadNeverThrows(t *testing.T) {
	got := NormalizeMatch("abc123-def456", probe.Object{})

	require.Equal(t, "abc123-def456", got.MatchID)
	require.Equal(t, "friendly", got.MatchType)
	require.Equal(t, 4, got.TotalSpots)
	require.Equal(t, 0, got.PlayersRegistered)
	require.Nil(t, got.DurationMinutes)
	require.Nil(t, got.TotalPrice)
	require.Empty(t, got.Participants)

	// and with no payloads at all
	got = NormalizeMatch("abc123-def456")
	require.Equal(t, "abc123-def456", got.MatchID)
}

func TestVenueNamePrecedence(t *testing.T) {
	for _, tc := range []struct {
		name string
		raw  string
		want string
	}{
		{"location wins", `{"location": "A", "tenant": {"tenant_name": "B", "name": "C"}}`, "A"},
		{"tenant_name second", `{"tenant": {"tenant_name": "B", "name": "C"}}`, "B"},
		{"tenant.name last", `{"tenant": {"name": "C"}}`, "C"},
		{"none", `{}`, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeMatch("m", mustObject(t, tc.raw))
			require.Equal(t, tc.want, got.VenueName)
		})
	}
}

func TestTotalPricePrecedence(t *testing.T) {
	got := NormalizeMatch("m", mustObject(t, `{"price": "24.50 €"}`))
	require.NotNil(t, got.TotalPrice)
	require.Equal(t, 24.5, *got.TotalPrice)

	got = NormalizeMatch("m", mustObject(t, `{"teams": [{"players": [{"price": "10"}]}]}`))
	require.NotNil(t, got.TotalPrice)
	require.Equal(t, 10.0, *got.TotalPrice)

	got = NormalizeMatch("m", mustObject(t, `{}`))
	require.Nil(t, got.TotalPrice)
}

func TestDurationDerivation(t *testing.T) {
	got := NormalizeMatch("m", mustObject(t, `{
		"start_date": "2025-06-14T18:30:00",
		"end_date": "2025-06-14T19:37:00"
	}`))
	require.NotNil(t, got.DurationMinutes)
	require.Equal(t, 67, *got.DurationMinutes)
	require.Equal(t, "18:30", got.MatchTime)

	// missing end date leaves duration unset
	got = NormalizeMatch("m", mustObject(t, `{"start_date": "2025-06-14T18:30:00"}`))
	require.Nil(t, got.DurationMinutes)
	require.Equal(t, "18:30", got.MatchTime)

	// unparseable timestamps leave everything unset
	got = NormalizeMatch("m", mustObject(t, `{"start_date": "whenever", "end_date": "later"}`))
	require.Nil(t, got.DurationMinutes)
	require.Equal(t, "", got.MatchTime)
}

func TestLocationSkipsMissingComponents(t *testing.T) {
	got := NormalizeMatch("m", mustObject(t, `{
		"tenant": {"address": {"street": "Main St 5", "city": "Gent"}}
	}`))
	require.Equal(t, "Main St 5, Gent", got.Location)
	require.Equal(t, "Gent", got.City)
}

func TestTotalSpotsFallback(t *testing.T) {
	got := NormalizeMatch("m", mustObject(t, `{"slots": 6}`))
	require.Equal(t, 6, got.TotalSpots)

	got = NormalizeMatch("m", mustObject(t, `{"max_players": 2}`))
	require.Equal(t, 2, got.TotalSpots)

	got = NormalizeMatch("m", mustObject(t, `{}`))
	require.Equal(t, 4, got.TotalSpots)
}

func TestMergeAcrossPayloadsFirstWins(t *testing.T) {
	first := mustObject(t, `{"location": "From First"}`)
	second := mustObject(t, `{
		"location": "From Second, must not overwrite",
		"resource_name": "Court 1",
		"start_date": "2025-06-14T10:00:00",
		"end_date": "2025-06-14T11:00:00"
	}`)

	got := NormalizeMatch("m", first, second)

	// already-filled fields keep the earlier payload's value
	require.Equal(t, "From First", got.VenueName)
	// fields the first payload left empty get filled by the later one
	require.Equal(t, "Court 1", got.CourtName)
	require.NotNil(t, got.DurationMinutes)
	require.Equal(t, 60, *got.DurationMinutes)
}

func TestRecordSerializesWithoutUnsetFields(t *testing.T) {
	data, err := json.Marshal(NormalizeMatch("m"))
	require.NoError(t, err)
	require.NotContains(t, string(data), "duration_minutes")
	require.NotContains(t, string(data), "total_price")
	require.Contains(t, string(data), `"total_spots":4`)
}
