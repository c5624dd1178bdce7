package tennisvl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"time"

	"courtside-backend/lib/restyutil"
	"courtside-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const defaultBaseUrl = "https://www.tennisvlaanderen.be"

type ClientOptions struct {
	// BaseUrl overrides the portal origin, mainly for tests.
	BaseUrl string
}

type Client struct {
	Http *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	// the portal serves degraded markup without browser headers and a
	// matching locale
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	client.SetHeader("accept-language", "nl-BE,nl;q=0.9,en;q=0.8")
	client.SetTimeout(time.Second * 30)

	// 2 requests max per second
	// max burst >= 2 just means that no requests will be dropped
	rateLimiter := rate.NewLimiter(2, 2)
	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return rateLimiter.Wait(req.Context())
	})

	telemetry.InstrumentResty(client, "scrapers/tennisvl/http")
	restyutil.AttachDebugOutput(client, restyutil.OutputFromEnv())

	return &Client{Http: client}, nil
}

// SearchPlayers fetches the player search page for a first/last name pair
// and extracts the result cards. An unreachable or non-2xx page means
// "not found", not a failure: the caller gets no records and no error.
func (c *Client) SearchPlayers(ctx context.Context, firstName, lastName string) ([]PlayerRecord, error) {
	ctx, span := tracer.Start(ctx, "client:SearchPlayers")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"voornaam":   firstName,
			"achternaam": lastName,
		}).
		Get("/spelers/zoeken")
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	if !res.IsSuccess() {
		slog.WarnContext(ctx, "player search served non-2xx, treating as no results",
			"status", res.StatusCode())
		return []PlayerRecord{}, nil
	}

	return ExtractPlayers(string(res.Body()), firstName, lastName), nil
}

// FetchProfile fetches a player's dashboard page by external id. A
// non-2xx response yields an empty document, which downstream extraction
// treats as "nothing found".
func (c *Client) FetchProfile(ctx context.Context, externalUserId string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:FetchProfile")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("spelerId", externalUserId).
		Get("/spelersdashboard")
	if err != nil {
		return "", fmt.Errorf("fetch profile: %w", err)
	}
	if !res.IsSuccess() {
		slog.WarnContext(ctx, "profile page served non-2xx, treating as not found",
			"status", res.StatusCode())
		return "", nil
	}

	return string(res.Body()), nil
}
