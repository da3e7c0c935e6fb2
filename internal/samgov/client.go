package samgov

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the SAM.gov Opportunities v2 search endpoint.
	DefaultBaseURL = "https://api.sam.gov/prod/opportunities/v2/search"

	// MaxPageSize is the largest page the API accepts.
	MaxPageSize = 1000

	// DefaultLookbackDays is the posted-date window applied when a
	// profile sets no explicit bounds.
	DefaultLookbackDays = 30

	dateFormat     = "01/02/2006"
	requestTimeout = 30 * time.Second
	maxRetries     = 3
	maxErrBodyLen  = 512
)

// SearchParams holds one page request's filters and cursor.
// Zero-valued optional filters are omitted from the query entirely.
type SearchParams struct {
	Keyword      string
	NAICSCode    string
	PostedFrom   string // MM/DD/YYYY; defaulted from LookbackDays when empty
	PostedTo     string // MM/DD/YYYY; defaulted to today when empty
	SetAside     string
	NoticeType   string
	LookbackDays int
	Limit        int
	Offset       int
}

// Values builds the query parameters the search endpoint expects.
// The credential is included as api_key; date bounds default to the
// [now − lookback, now] window.
func (p SearchParams) Values(apiKey string, now time.Time) url.Values {
	limit := p.Limit
	if limit <= 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	lookback := p.LookbackDays
	if lookback <= 0 {
		lookback = DefaultLookbackDays
	}

	from := p.PostedFrom
	if from == "" {
		from = now.AddDate(0, 0, -lookback).Format(dateFormat)
	}
	to := p.PostedTo
	if to == "" {
		to = now.Format(dateFormat)
	}

	v := url.Values{}
	v.Set("api_key", apiKey)
	v.Set("limit", strconv.Itoa(limit))
	v.Set("offset", strconv.Itoa(offset))
	v.Set("postedFrom", from)
	v.Set("postedTo", to)

	if p.Keyword != "" {
		v.Set("keyword", p.Keyword)
	}
	if p.NAICSCode != "" {
		v.Set("ncode", p.NAICSCode)
	}
	if p.SetAside != "" {
		v.Set("typeOfSetAside", p.SetAside)
	}
	if p.NoticeType != "" {
		v.Set("ptype", p.NoticeType)
	}
	return v
}

// Client calls the SAM.gov opportunities search API. The credential is
// an explicit field rather than ambient process state.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client

	// Now is the clock used for default date windows. Tests override it.
	Now func() time.Time
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		HTTP: &http.Client{
			Timeout: requestTimeout,
		},
		Now: time.Now,
	}
}

// FetchPage issues one search request and decodes the response.
// Retryable failures (429, 5xx, timeouts) are retried with exponential
// backoff up to maxRetries; anything else fails immediately.
func (c *Client) FetchPage(ctx context.Context, p SearchParams) (*SearchResponse, error) {
	if c.APIKey == "" {
		return nil, &ConfigError{
			Field: "SAM_API_KEY",
			Msg:   "not set; request a public API key under Account Details at https://sam.gov",
		}
	}

	reqURL := c.BaseURL + "?" + p.Values(c.APIKey, c.Now()).Encode()

	var lastErr *TransportError
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 0.5s, 1s, 2s + jitter
			backoff := time.Duration(500*(1<<uint(attempt-1))) * time.Millisecond
			jitter := time.Duration(rand.Intn(100)) * time.Millisecond
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff + jitter):
			}
			log.WithFields(log.Fields{"attempt": attempt, "offset": p.Offset}).
				Warn("retrying sam.gov request")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.HTTP.Do(req)
		if err != nil {
			lastErr = &TransportError{Cause: err}
			if lastErr.Retryable() {
				continue
			}
			return nil, lastErr
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyLen))
			resp.Body.Close()
			lastErr = &TransportError{StatusCode: resp.StatusCode, Body: string(body)}
			if lastErr.Retryable() {
				continue
			}
			return nil, lastErr
		}

		var page SearchResponse
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("decoding response: %w", err)
		}
		resp.Body.Close()
		return &page, nil
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}
