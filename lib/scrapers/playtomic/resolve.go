package playtomic

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"courtside-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
)

// MatchIDPattern matches the canonical match id: a path segment of
// lowercase hex digits and dashes following the literal `matches/`
// segment. Single source of truth for every resolution step; if the
// source system ever changes its id format this is the one place to
// touch.
var MatchIDPattern = regexp.MustCompile(`matches/([0-9a-f][0-9a-f-]*)`)

// ErrUnresolved means the input URL could not be turned into a canonical
// match id. This is an expected outcome for malformed or dead links, not
// a fault; callers should treat it as insufficient input.
var ErrUnresolved = errors.New("could not resolve canonical match id")

func findMatchID(s string) string {
	groups := MatchIDPattern.FindStringSubmatch(s)
	if len(groups) < 2 {
		return ""
	}
	return groups[1]
}

// findMatchIDInBody scans an interstitial page for the canonical id:
// first the hrefs of its anchors ("open in app" style links), then the
// raw markup, since client-side redirects live in meta/script blobs
// that carry no anchor.
func findMatchIDInBody(ctx context.Context, body string) string {
	page, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err == nil {
		for _, a := range htmlutil.GetAnchors(ctx, page.Find("a[href]")) {
			if id := findMatchID(a.Href); id != "" {
				return id
			}
		}
	}
	return findMatchID(body)
}

func shortCode(rawUrl string) string {
	parsed, err := url.Parse(rawUrl)
	if err != nil {
		return ""
	}
	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) == 0 {
		return ""
	}
	return segments[len(segments)-1]
}

// ResolveMatchID turns a shareable match URL into the canonical match id.
//
// 1. a URL already carrying the id pattern resolves without any network
// call.
// 2. otherwise the short-code segment is refetched against the short-link
// origin with redirects enabled and the post-redirect URL is inspected.
// 3. failing that, the response body is scanned for an embedded URL with
// the id pattern (the site sometimes serves an HTML interstitial with a
// client-side redirect instead of an HTTP one).
func (c *Client) ResolveMatchID(ctx context.Context, rawUrl string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:ResolveMatchID")
	defer span.End()

	if id := findMatchID(rawUrl); id != "" {
		span.SetAttributes(attribute.String("resolved_via", "input_url"))
		return id, nil
	}

	code := shortCode(rawUrl)
	if code == "" {
		return "", ErrUnresolved
	}

	res, err := c.Http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/%s", c.shareBase, code))
	if err != nil {
		return "", fmt.Errorf("resolve short link: %w", err)
	}

	finalUrl := rawUrl
	if res.RawResponse != nil && res.RawResponse.Request != nil {
		finalUrl = res.RawResponse.Request.URL.String()
	}
	if id := findMatchID(finalUrl); id != "" {
		span.SetAttributes(attribute.String("resolved_via", "redirect"))
		return id, nil
	}

	if id := findMatchIDInBody(ctx, string(res.Body())); id != "" {
		span.SetAttributes(attribute.String("resolved_via", "body_scan"))
		return id, nil
	}

	return "", ErrUnresolved
}
