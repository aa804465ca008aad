package portfolio

import "fmt"

// PriceLookup resolves the latest known price for an instrument. Typically
// backed by the market data provider; the aggregate itself never performs
// network I/O.
type PriceLookup func(instrumentID string) (float64, error)

// CurrentValue is cash plus the sum of quantity*price over all holdings.
// A single missing price fails the whole valuation; a partial result
// silently valued at zero would understate assets.
func (p *Portfolio) CurrentValue(lookup PriceLookup) (float64, error) {
	total := p.CashBalance
	for id, h := range p.Holdings {
		price, err := lookup(id)
		if err != nil {
			return 0, fmt.Errorf("quote %s: %w", id, ErrPriceUnavailable)
		}
		total += h.Quantity * price
	}
	return total, nil
}

// ReturnSince reports the fractional return against an initial investment:
// (currentValue - initial) / initial.
func (p *Portfolio) ReturnSince(initialInvestment float64, lookup PriceLookup) (float64, error) {
	if initialInvestment == 0 {
		return 0, ErrInvalidAmount
	}
	current, err := p.CurrentValue(lookup)
	if err != nil {
		return 0, err
	}
	return (current - initialInvestment) / initialInvestment, nil
}
