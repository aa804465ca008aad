// Package news is the content collaborator behind the news page: fetched
// headlines, the financial term of the day, and a composed daily newsletter.
// Failures are reported, not papered over with canned articles; any demo
// fallback is the frontend's call.
package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var ErrNewsUnavailable = errors.New("News unavailable")

// Article is one fetched headline.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
}

// Provider abstracts the upstream headline source for testability.
type Provider interface {
	GetHeadlines(ctx context.Context) ([]Article, error)
}

// HTTPProvider fetches headlines from a configurable JSON endpoint.
type HTTPProvider struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 8 * time.Second},
	}
}

func (p *HTTPProvider) GetHeadlines(ctx context.Context) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"/headlines", nil)
	if err != nil {
		return nil, ErrNewsUnavailable
	}
	req.Header.Set("User-Agent", "moneta-backend/1.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNewsUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: upstream status %d", ErrNewsUnavailable, resp.StatusCode)
	}

	var body struct {
		Articles []Article `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNewsUnavailable, err)
	}
	return body.Articles, nil
}
