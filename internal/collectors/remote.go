package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/Krisna-19/dealcompare/internal/httpx"
	"github.com/Krisna-19/dealcompare/internal/models"
)

// RemoteCollector pulls offers from an HTTP source that answers
// GET <base>?query=<q> with a JSON array of raw offers. Fetching goes
// through the retrying client; transient upstream errors surface as a
// collector error and cost the request nothing but this source.
type RemoteCollector struct {
	name   string
	base   string
	client *httpx.Client
}

func NewRemoteCollector(name, base string, client *httpx.Client) *RemoteCollector {
	return &RemoteCollector{name: name, base: base, client: client}
}

func (c *RemoteCollector) Name() string { return c.name }

func (c *RemoteCollector) Collect(ctx context.Context, query string) ([]models.RawOffer, error) {
	u, err := url.Parse(c.base)
	if err != nil {
		return nil, fmt.Errorf("bad source url: %w", err)
	}
	q := u.Query()
	q.Set("query", query)
	u.RawQuery = q.Encode()

	body, err := c.client.Fetch(ctx, u.String())
	if err != nil {
		return nil, err
	}

	var offers []models.RawOffer
	if err := json.Unmarshal(body, &offers); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	return offers, nil
}
