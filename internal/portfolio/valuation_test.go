package portfolio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableLookup(prices map[string]float64) PriceLookup {
	return func(id string) (float64, error) {
		price, ok := prices[id]
		if !ok {
			return 0, errors.New("no quote")
		}
		return price, nil
	}
}

func TestCurrentValue(t *testing.T) {
	p := New(1_000_000)
	_, err := p.Buy("AAPL", 10, 150, t0)
	require.NoError(t, err)
	_, err = p.Buy("BTC", 0.5, 40_000, t0)
	require.NoError(t, err)

	value, err := p.CurrentValue(tableLookup(map[string]float64{
		"AAPL": 200,
		"BTC":  50_000,
	}))
	require.NoError(t, err)
	// cash 978,500 + 10*200 + 0.5*50,000
	assert.InDelta(t, 978_500+2000+25_000, value, 1e-6)
}

// One unresolvable instrument fails the whole valuation; nothing is silently
// valued at zero.
func TestCurrentValue_PriceUnavailable(t *testing.T) {
	p := New(1_000_000)
	_, err := p.Buy("AAPL", 10, 150, t0)
	require.NoError(t, err)
	_, err = p.Buy("MYSTERY", 1, 100, t0)
	require.NoError(t, err)

	_, err = p.CurrentValue(tableLookup(map[string]float64{"AAPL": 200}))
	assert.ErrorIs(t, err, ErrPriceUnavailable)
	assert.ErrorContains(t, err, "MYSTERY")
}

func TestCurrentValue_CashOnly(t *testing.T) {
	p := New(777)
	value, err := p.CurrentValue(tableLookup(nil))
	require.NoError(t, err)
	assert.InDelta(t, 777, value, 1e-9)
}

func TestReturnSince(t *testing.T) {
	p := New(10_000_000)
	_, err := p.Buy("AAPL", 100, 10_000, t0)
	require.NoError(t, err)

	// 100 shares now worth 12,000 each: value 9,000,000 + 1,200,000.
	r, err := p.ReturnSince(10_000_000, tableLookup(map[string]float64{"AAPL": 12_000}))
	require.NoError(t, err)
	assert.InDelta(t, 0.02, r, 1e-9)

	_, err = p.ReturnSince(0, tableLookup(nil))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
