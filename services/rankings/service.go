// Package rankings exposes player search and per-sport ranking lookups
// against the federation portal.
package rankings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"courtside-backend/lib/scrapers/tennisvl"
	"courtside-backend/lib/textutil"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/rankings")

// ErrPlayerNotFound reports that the portal has no profile for the
// requested player id.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerSource is the portal surface the service consumes, satisfied by
// *tennisvl.Client.
type PlayerSource interface {
	SearchPlayers(ctx context.Context, firstName, lastName string) ([]tennisvl.PlayerRecord, error)
	FetchProfile(ctx context.Context, externalUserId string) (string, error)
}

type Service struct {
	client PlayerSource
}

func NewService(client PlayerSource) Service {
	return Service{client: client}
}

// SearchPlayers finds portal players matching the given name, best
// matches first.
func (s Service) SearchPlayers(ctx context.Context, firstName, lastName string) ([]tennisvl.PlayerRecord, error) {
	ctx, span := tracer.Start(ctx, "SearchPlayers")
	defer span.End()

	players, err := s.client.SearchPlayers(ctx, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}

	query := textutil.NormalizeName(strings.TrimSpace(firstName + " " + lastName))
	sort.SliceStable(players, func(i, j int) bool {
		return nameSimilarity(query, players[i].Name) >
			nameSimilarity(query, players[j].Name)
	})
	return players, nil
}

func nameSimilarity(query, candidate string) float64 {
	return matchr.JaroWinkler(query, textutil.NormalizeName(candidate), false)
}

// Ranking is one player's standing in one sport.
type Ranking struct {
	ExternalUserID string `json:"external_user_id"`
	Sport          string `json:"sport"`
	Ranking        string `json:"ranking,omitempty"`
	Club           string `json:"club,omitempty"`
}

// PlayerRanking fetches the player's profile and extracts the ranking
// for the given sport plus the club name. A player whose profile does
// not list the sport still resolves: the ranking falls back to the
// profile's primary score, since the portal shows a single combined
// dashboard for players registered under one discipline.
func (s Service) PlayerRanking(ctx context.Context, externalUserId, sport string) (Ranking, error) {
	ctx, span := tracer.Start(ctx, "PlayerRanking")
	defer span.End()

	doc, err := s.client.FetchProfile(ctx, externalUserId)
	if err != nil {
		return Ranking{}, fmt.Errorf("fetch profile: %w", err)
	}
	if doc == "" {
		return Ranking{}, ErrPlayerNotFound
	}

	return Ranking{
		ExternalUserID: externalUserId,
		Sport:          sport,
		Ranking:        tennisvl.RankingForSport(doc, sport, true),
		Club:           tennisvl.ClubFromProfile(doc),
	}, nil
}
