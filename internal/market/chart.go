package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type cachedQuote struct {
	quote   Quote
	fetched time.Time
}

// ChartProvider fetches quotes from a Yahoo-v8-chart-shaped endpoint and
// caches them briefly so pricing a whole portfolio does not hammer the
// upstream. On any upstream failure it returns ErrPriceUnavailable; the
// fallback-to-demo-content policy belongs to the UI, not here.
type ChartProvider struct {
	BaseURL string
	Client  *http.Client

	ttl   time.Duration
	mu    sync.RWMutex
	cache map[string]cachedQuote
}

func NewChartProvider(baseURL string) *ChartProvider {
	return &ChartProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 8 * time.Second},
		ttl:     60 * time.Second,
		cache:   make(map[string]cachedQuote),
	}
}

func (p *ChartProvider) GetPrice(ctx context.Context, symbol string) (Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return Quote{}, ErrPriceUnavailable
	}

	p.mu.RLock()
	if c, ok := p.cache[symbol]; ok && time.Since(c.fetched) < p.ttl {
		p.mu.RUnlock()
		return c.quote, nil
	}
	p.mu.RUnlock()

	url := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1m&range=1d", p.BaseURL, symbol)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}
	req.Header.Set("User-Agent", "moneta-backend/1.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("symbol", symbol).Msg("Quote fetch failed")
		return Quote{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("symbol", symbol).Msg("Quote fetch failed")
		return Quote{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}

	var raw struct {
		Chart struct {
			Result []struct {
				Meta struct {
					RegularMarketPrice float64 `json:"regularMarketPrice"`
					RegularMarketTime  int64   `json:"regularMarketTime"`
				} `json:"meta"`
				Timestamp  []int64 `json:"timestamp"`
				Indicators struct {
					Quote []struct {
						Close []float64 `json:"close"`
					} `json:"quote"`
				} `json:"indicators"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Quote{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}
	if len(raw.Chart.Result) == 0 {
		return Quote{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}

	r := raw.Chart.Result[0]
	price := r.Meta.RegularMarketPrice
	asOf := time.Unix(r.Meta.RegularMarketTime, 0)

	// Meta can be missing on thin symbols; fall back to the last non-zero close.
	if price <= 0 && len(r.Timestamp) > 0 && len(r.Indicators.Quote) > 0 && len(r.Indicators.Quote[0].Close) == len(r.Timestamp) {
		for i := len(r.Timestamp) - 1; i >= 0; i-- {
			if c := r.Indicators.Quote[0].Close[i]; c > 0 {
				price = c
				asOf = time.Unix(r.Timestamp[i], 0)
				break
			}
		}
	}
	if price <= 0 {
		return Quote{}, fmt.Errorf("%w: %s", ErrPriceUnavailable, symbol)
	}

	q := Quote{Symbol: symbol, Price: price, AsOf: asOf}
	p.mu.Lock()
	p.cache[symbol] = cachedQuote{quote: q, fetched: time.Now()}
	p.mu.Unlock()
	return q, nil
}
