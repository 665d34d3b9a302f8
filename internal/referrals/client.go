package referrals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const timeLayout = "2006-01-02T15:04:05Z"

// StatusError reports a non-200 response from the referrals service.
type StatusError struct {
	Status int
	URL    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("referrals service returned status %d for %s", e.Status, e.URL)
}

// Client talks to the referrals REST service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request timeout on the default client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type audienceEntry struct {
	TelegramUserID int64 `json:"telegramUserId"`
}

// AudienceIDs fetches the full broadcast audience from /info/getId.
func (c *Client) AudienceIDs(ctx context.Context) ([]int64, error) {
	var entries []audienceEntry
	if err := c.getJSON(ctx, c.baseURL+"/info/getId", &entries); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.TelegramUserID)
	}
	return ids, nil
}

// Partners fetches partner IDs active within [start, end].
func (c *Client) Partners(ctx context.Context, start, end time.Time) ([]int64, error) {
	var ids []int64
	if err := c.getJSON(ctx, c.baseURL+"/partners?"+windowQuery(start, end), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Referrals fetches referral IDs of one partner within [start, end].
func (c *Client) Referrals(ctx context.Context, partnerID int64, start, end time.Time) ([]int64, error) {
	endpoint := fmt.Sprintf("%s/partners/%d/referrals?%s", c.baseURL, partnerID, windowQuery(start, end))
	var ids []int64
	if err := c.getJSON(ctx, endpoint, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &StatusError{Status: resp.StatusCode, URL: endpoint}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

func windowQuery(start, end time.Time) string {
	q := url.Values{}
	q.Set("start", start.UTC().Format(timeLayout))
	q.Set("end", end.UTC().Format(timeLayout))
	return q.Encode()
}
