package tennisvl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// pad returns n characters of inert markup so that fixture cards sit
// further apart than the card-context window reaches.
func pad(n int) string {
	return strings.Repeat("<!-- x -->", n/10+1)
}

func searchResultsFixture() string {
	card1 := `
	<div class="resultaat">
		<h5>Jan Peeters</h5>
		<i class="icon icon-sport-tennis"></i> <span>TC De Maneblussers | Mechelen</span>
		<p>Klassement: <b>P400</b></p>
		<a href="/spelersdashboard?spelerId=1001">Bekijk profiel</a>
		<a href="/spelersdashboard?spelerId=1001&tab=resultaten">Resultaten</a>
	</div>`
	card2 := `
	<div class="resultaat">
		<a href="/spelersdashboard?spelerId=1002">Bekijk profiel</a>
	</div>`
	return "<html><body>" + card1 + pad(cardContextBefore) + card2 + "</body></html>"
}

func TestExtractPlayersDedupesById(t *testing.T) {
	records := ExtractPlayers(searchResultsFixture(), "Jan", "Peeters")
	require.Len(t, records, 2, "two links for 1001 collapse into one record")

	require.Equal(t, "1001", records[0].ExternalUserID)
	require.Equal(t, "Jan Peeters", records[0].Name)
	require.Equal(t, "TC De Maneblussers", records[0].Club, "club stops at the | delimiter")
	require.Equal(t, "P400", records[0].Ranking)
}

func TestExtractPlayersFallbackName(t *testing.T) {
	records := ExtractPlayers(searchResultsFixture(), "Jan", "Peeters")
	require.Equal(t, "1002", records[1].ExternalUserID)
	require.Equal(t, "Jan Peeters", records[1].Name, "query name substitutes for a missing heading")
	require.Empty(t, records[1].Club, "absent fields are not invented")
	require.Empty(t, records[1].Ranking)
}

func TestExtractPlayersRepeatedIdYieldsOneRecord(t *testing.T) {
	link := `<a href="/spelersdashboard?spelerId=77">p</a>`
	doc := strings.Repeat(link, 5)
	records := ExtractPlayers(doc, "A", "B")
	require.Len(t, records, 1)
	require.Equal(t, "77", records[0].ExternalUserID)
}

func TestExtractPlayersNoMatches(t *testing.T) {
	records := ExtractPlayers("<html><body>geen resultaten</body></html>", "Jan", "Peeters")
	require.NotNil(t, records)
	require.Empty(t, records)
}

func TestSearchPlayersNon2xxMeansNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	records, err := client.SearchPlayers(context.Background(), "Jan", "Peeters")
	require.NoError(t, err, "an unavailable portal is not-found, not a failure")
	require.Empty(t, records)
}

func TestSearchPlayersEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Jan", r.URL.Query().Get("voornaam"))
		require.Equal(t, "Peeters", r.URL.Query().Get("achternaam"))
		fmt.Fprint(w, searchResultsFixture())
	}))
	defer server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: server.URL})
	require.NoError(t, err)

	records, err := client.SearchPlayers(context.Background(), "Jan", "Peeters")
	require.NoError(t, err)
	require.Len(t, records, 2)
}
