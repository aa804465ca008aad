// Package market supplies current instrument prices. It is a boundary
// collaborator: the portfolio core consumes it as a price lookup and the
// provider reports real failures instead of substituting demo data.
package market

import (
	"context"
	"errors"
	"time"
)

var ErrPriceUnavailable = errors.New("Price unavailable")

// Quote is the latest known price for an instrument.
type Quote struct {
	Symbol string    `json:"symbol"`
	Price  float64   `json:"price"`
	AsOf   time.Time `json:"as_of"`
}

// PriceProvider abstracts the upstream quote source for testability.
type PriceProvider interface {
	GetPrice(ctx context.Context, symbol string) (Quote, error)
}
