package playtomic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractFromPageText(t *testing.T) {
	text := `
		Padel Club Gent
		14/06/2025 18:30
		2 / 4 jugadores
		90 min
		24,50 €
	`
	got := ExtractFromPageText(text)

	require.NotNil(t, got.Price)
	require.Equal(t, 24.5, *got.Price)
	require.Equal(t, "2025-06-14", got.Date)
	require.Equal(t, "18:30", got.Time)
	require.Equal(t, 2, got.Registered)
	require.Equal(t, 4, got.Spots)
	require.NotNil(t, got.DurationMinutes)
	require.Equal(t, 90, *got.DurationMinutes)
}

func TestExtractTwoDigitCounts(t *testing.T) {
	// date fragments also look like digit/digit pairs; the plausibility
	// filter rejects them and the real count still gets through
	got := ExtractFromPageText("14/06/2025\n10 / 16 spelers")
	require.Equal(t, 10, got.Registered)
	require.Equal(t, 16, got.Spots)
}

func TestExtractSpanishCountPhrase(t *testing.T) {
	got := ExtractFromPageText("3 de 4 plazas ocupadas")
	require.Equal(t, 3, got.Registered)
	require.Equal(t, 4, got.Spots)
}

func TestExtractFromEmptyText(t *testing.T) {
	got := ExtractFromPageText("nothing useful here")
	require.Nil(t, got.Price)
	require.Empty(t, got.Date)
	require.Empty(t, got.Time)
	require.Zero(t, got.Registered)
	require.Nil(t, got.DurationMinutes)
}

func TestApplyTextExtractOnlyFillsUnset(t *testing.T) {
	details := NormalizeMatch("m")
	details.MatchDate = "2025-06-14T18:30:00"

	ApplyTextExtract(&details, TextExtract{
		Price: ptrFloat(12),
		Date:  "01/01/2020",
		Time:  "10:00",
	})

	require.Equal(t, "2025-06-14T18:30:00", details.MatchDate, "structured value is never overwritten")
	require.Equal(t, "10:00", details.MatchTime)
	require.NotNil(t, details.PricePerPerson)
	require.Equal(t, 12.0, *details.PricePerPerson)
}
