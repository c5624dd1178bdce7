// Package matchdata resolves shared match links to full match records,
// falling back to a headless-browser capture when the structured API is
// unavailable.
package matchdata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"courtside-backend/lib/browser"
	"courtside-backend/lib/probe"
	"courtside-backend/lib/scrapers/playtomic"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("services/matchdata")

// ErrUpstream reports that neither the structured API nor the browser
// fallback could produce match data.
var ErrUpstream = errors.New("match data unavailable upstream")

// MatchSource is the structured API surface the service consumes,
// satisfied by *playtomic.Client.
type MatchSource interface {
	ResolveMatchID(ctx context.Context, rawUrl string) (string, error)
	FetchMatch(ctx context.Context, matchId string) (probe.Object, error)
}

type Service struct {
	client   MatchSource
	capturer browser.Capturer
}

// NewService wires the service. capturer may be nil, in which case API
// failures are returned directly instead of falling back.
func NewService(client MatchSource, capturer browser.Capturer) Service {
	return Service{
		client:   client,
		capturer: capturer,
	}
}

// GetMatch takes a shared match link (short or canonical) and returns
// the normalized match record.
func (s Service) GetMatch(ctx context.Context, rawUrl string) (playtomic.MatchDetails, error) {
	ctx, span := tracer.Start(ctx, "GetMatch")
	defer span.End()

	matchId, err := s.client.ResolveMatchID(ctx, rawUrl)
	if err != nil {
		return playtomic.MatchDetails{}, fmt.Errorf("resolve match id: %w", err)
	}

	payload, err := s.client.FetchMatch(ctx, matchId)
	if err == nil {
		return playtomic.NormalizeMatch(matchId, payload), nil
	}
	if s.capturer == nil {
		return playtomic.MatchDetails{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	slog.WarnContext(ctx, "match api failed, falling back to browser capture",
		"match_id", matchId, "err", err)
	return s.captureMatch(ctx, matchId)
}

func (s Service) captureMatch(ctx context.Context, matchId string) (playtomic.MatchDetails, error) {
	ctx, span := tracer.Start(ctx, "captureMatch")
	defer span.End()

	capture, err := s.capturer.Capture(ctx, "https://app.playtomic.io/matches/"+matchId)
	if err != nil {
		return playtomic.MatchDetails{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var payloads []probe.Object
	for _, p := range capture.Payloads {
		if !strings.Contains(p.URL, matchId) && !strings.Contains(p.URL, "/matches") {
			continue
		}
		obj, err := probe.FromJSON(p.Body)
		if err != nil {
			slog.DebugContext(ctx, "skipping non-object payload",
				"url", p.URL, "err", err)
			continue
		}
		payloads = append(payloads, obj)
	}

	details := playtomic.NormalizeMatch(matchId, payloads...)
	if details.VenueName == "" && details.MatchDate == "" {
		// structured payloads told us nothing, mine the visible text
		playtomic.ApplyTextExtract(&details, playtomic.ExtractFromPageText(capture.PageText))
	}
	if details.VenueName == "" && details.MatchDate == "" && len(details.Participants) == 0 {
		return playtomic.MatchDetails{}, ErrUpstream
	}
	return details, nil
}
