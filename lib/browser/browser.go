// Package browser is the headless-browser capture capability: given a
// URL, it returns the JSON payloads intercepted from network traffic
// during navigation plus the rendered page text. Consumers stay agnostic
// to whether their payloads came from a direct API call or from here.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("lib/browser")

// Payload is one JSON response body recorded during navigation, tagged
// with the URL that served it.
type Payload struct {
	URL  string
	Body []byte
}

// Capture is everything recorded during one navigation.
type Capture struct {
	Payloads []Payload
	PageText string
}

// Capturer loads a page and records what it saw. Implementations own the
// browser lifecycle; a session never outlives one call.
type Capturer interface {
	Capture(ctx context.Context, url string) (Capture, error)
}

// Single user data dir to avoid accumulating temp dirs (each ~20MB+),
// which can fill disk on small VMs.
const chromeUserDataDir = "/tmp/courtside_chrome"

type Options struct {
	// NavigateTimeout bounds the whole session. Defaults to 30s.
	NavigateTimeout time.Duration
	// SettleDelay is how long to wait after navigation for asynchronous
	// content and API calls to complete. Defaults to 4s.
	SettleDelay time.Duration
	// ExecPath points at a specific Chrome binary; empty uses the
	// default lookup.
	ExecPath string
}

func (o Options) withDefaults() Options {
	if o.NavigateTimeout <= 0 {
		o.NavigateTimeout = time.Second * 30
	}
	if o.SettleDelay <= 0 {
		o.SettleDelay = time.Second * 4
	}
	return o
}

// ChromeCapturer runs a headless Chrome session per capture.
type ChromeCapturer struct {
	opts Options
}

func NewChromeCapturer(opts Options) *ChromeCapturer {
	return &ChromeCapturer{opts: opts.withDefaults()}
}

func (c *ChromeCapturer) Capture(ctx context.Context, url string) (out Capture, err error) {
	ctx, span := tracer.Start(ctx, "Capture")
	defer span.End()

	// reuse a single dir and clean it before use so crashed sessions
	// don't pile up profiles
	_ = os.RemoveAll(chromeUserDataDir)

	ctx, cancelTimeout := context.WithTimeout(ctx, c.opts.NavigateTimeout)
	defer cancelTimeout()

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserDataDir(chromeUserDataDir),
		chromedp.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"),
	)
	if c.opts.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(c.opts.ExecPath))
	}

	allocCtx, cancelAllocator := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAllocator()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	// record every JSON response seen while the page loads; bodies are
	// fetched after navigation settles since they are not available
	// until the request finishes
	var mu sync.Mutex
	type seenResponse struct {
		requestId network.RequestID
		url       string
	}
	var seen []seenResponse

	chromedp.ListenTarget(browserCtx, func(ev any) {
		res, ok := ev.(*network.EventResponseReceived)
		if !ok {
			return
		}
		if !strings.Contains(res.Response.MimeType, "json") {
			return
		}
		mu.Lock()
		seen = append(seen, seenResponse{
			requestId: res.RequestID,
			url:       res.Response.URL,
		})
		mu.Unlock()
	})

	var pageText string
	err = chromedp.Run(browserCtx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.Sleep(c.opts.SettleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			mu.Lock()
			pending := make([]seenResponse, len(seen))
			copy(pending, seen)
			mu.Unlock()

			for _, res := range pending {
				body, err := network.GetResponseBody(res.requestId).Do(ctx)
				if err != nil {
					// bodies evicted from the browser cache are gone;
					// keep whatever else was captured
					slog.DebugContext(ctx, "response body unavailable",
						"url", res.url, "err", err)
					continue
				}
				out.Payloads = append(out.Payloads, Payload{
					URL:  res.url,
					Body: body,
				})
			}
			return nil
		}),
		chromedp.Evaluate(`document.body ? document.body.innerText : ""`, &pageText),
	)
	if err != nil {
		return Capture{}, fmt.Errorf("browser capture: %w", err)
	}

	out.PageText = pageText
	return out, nil
}
