package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"lineupwatch-backend/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ErrPageUnavailable wraps every fetch failure. Callers treat it as
// "could not fetch", never as a fault.
var ErrPageUnavailable = errors.New("roster page unavailable")

// Client retrieves raw roster pages, consulting the page cache first and
// writing through on success.
type Client struct {
	http  *resty.Client
	pages *PageCache
}

func NewClient(pages *PageCache) *Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/roster/http")

	return &Client{
		http:  client,
		pages: pages,
	}
}

func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	if content, ok := c.pages.Get(url); ok {
		span.AddEvent("page cache hit")
		return content, nil
	}

	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch roster page", "url", url, "err", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return "", fmt.Errorf("%w: %v", ErrPageUnavailable, err)
	}
	if res.IsError() {
		slog.ErrorContext(ctx, "roster page returned error status", "url", url, "status", res.Status())
		span.SetStatus(codes.Error, res.Status())
		return "", fmt.Errorf("%w: status %s", ErrPageUnavailable, res.Status())
	}

	content := res.String()
	if strings.TrimSpace(content) == "" {
		slog.ErrorContext(ctx, "roster page returned empty body", "url", url)
		span.SetStatus(codes.Error, "empty response body")
		return "", fmt.Errorf("%w: empty response", ErrPageUnavailable)
	}

	c.pages.Put(url, content)
	return content, nil
}
