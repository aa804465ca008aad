package investment

import (
	"context"
	"testing"
	"time"

	"moneta-backend/internal/portfolio"
	"moneta-backend/internal/portfolio/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func setupService(t *testing.T, startingCash float64) (*Service, *store.Store, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	st := store.New(rdb)
	svc, err := NewService(context.Background(), st, startingCash)
	require.NoError(t, err)
	svc.Now = func() time.Time { return testClock }
	return svc, st, mr
}

func TestNewService_SeedsAndReloads(t *testing.T) {
	svc, st, _ := setupService(t, 10_000_000)
	ctx := context.Background()

	_, err := svc.Buy(ctx, "AAPL", 10, 150)
	require.NoError(t, err)

	// A second service over the same store sees the persisted aggregate,
	// not a fresh seed.
	svc2, err := NewService(ctx, st, 10_000_000)
	require.NoError(t, err)
	pf := svc2.ViewPortfolio()
	assert.InDelta(t, 9_998_500, pf.CashBalance, 1e-9)
	assert.InDelta(t, 10, pf.Holdings["AAPL"].Quantity, 1e-9)
}

// Every successful mutation is persisted in full: a cold reload matches the
// live aggregate exactly.
func TestMutationsPersistFullAggregate(t *testing.T) {
	svc, st, _ := setupService(t, 10_000_000)
	ctx := context.Background()

	_, err := svc.Buy(ctx, "AAPL", 10, 150)
	require.NoError(t, err)
	_, err = svc.OpenSavings(ctx, "term-deposit", 1_000_000, 4.0, 12)
	require.NoError(t, err)
	_, err = svc.AddEntry(ctx, "food", "dinner", -30_000, portfolio.EntryExpense)
	require.NoError(t, err)

	persisted, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, svc.ViewPortfolio(), persisted)
}

// When the store is down the operation fails and the in-memory aggregate
// rolls back to the pre-operation state.
func TestMutation_RollsBackWhenSaveFails(t *testing.T) {
	svc, _, mr := setupService(t, 10_000_000)
	ctx := context.Background()

	_, err := svc.Buy(ctx, "AAPL", 10, 150)
	require.NoError(t, err)
	before := svc.ViewPortfolio()

	mr.Close()
	_, err = svc.Buy(ctx, "AAPL", 5, 200)
	require.Error(t, err)
	assert.Equal(t, before, svc.ViewPortfolio())
}

func TestSettleMatured_ServiceLevelIdempotent(t *testing.T) {
	svc, _, _ := setupService(t, 5_000_000)
	ctx := context.Background()

	rec, err := svc.OpenSavings(ctx, "term-deposit", 1_000_000, 4.0, 12)
	require.NoError(t, err)

	// Advance the injected clock past maturity.
	svc.Now = func() time.Time { return rec.MaturityDate.Add(time.Hour) }

	matured, err := svc.SettleMatured(ctx)
	require.NoError(t, err)
	require.Len(t, matured, 1)
	assert.InDelta(t, 5_040_000, svc.ViewPortfolio().CashBalance, 1e-6)

	again, err := svc.SettleMatured(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
	assert.InDelta(t, 5_040_000, svc.ViewPortfolio().CashBalance, 1e-6)
}

// Nothing due means nothing saved: the settle path does not rewrite the
// store on a no-op.
func TestSettleMatured_NoOpDoesNotPersist(t *testing.T) {
	svc, _, mr := setupService(t, 5_000_000)
	ctx := context.Background()

	_, err := svc.OpenSavings(ctx, "term-deposit", 1_000_000, 4.0, 12)
	require.NoError(t, err)

	// Store down: a no-op settle must still succeed.
	mr.Close()
	matured, err := svc.SettleMatured(ctx)
	require.NoError(t, err)
	assert.Empty(t, matured)
}

func TestViewPortfolio_ReturnsACopy(t *testing.T) {
	svc, _, _ := setupService(t, 1_000_000)
	ctx := context.Background()

	_, err := svc.Buy(ctx, "AAPL", 1, 100)
	require.NoError(t, err)

	pf := svc.ViewPortfolio()
	pf.CashBalance = 0
	pf.Holdings["AAPL"] = portfolio.Holding{Quantity: 999}

	fresh := svc.ViewPortfolio()
	assert.InDelta(t, 999_900, fresh.CashBalance, 1e-9)
	assert.InDelta(t, 1, fresh.Holdings["AAPL"].Quantity, 1e-9)
}

func TestValuation(t *testing.T) {
	svc, _, _ := setupService(t, 10_000_000)
	ctx := context.Background()

	_, err := svc.Buy(ctx, "AAPL", 10, 150)
	require.NoError(t, err)

	value, ret, err := svc.Valuation(func(id string) (float64, error) {
		return 200, nil
	})
	require.NoError(t, err)
	assert.InDelta(t, 9_998_500+2000, value, 1e-6)
	assert.InDelta(t, 500.0/10_000_000, ret, 1e-12)
}

func TestViewLedger_NewestFirst(t *testing.T) {
	svc, _, _ := setupService(t, 1_000_000)
	ctx := context.Background()

	first, err := svc.AddEntry(ctx, "salary", "payroll", 3_000_000, portfolio.EntryIncome)
	require.NoError(t, err)
	second, err := svc.AddEntry(ctx, "food", "lunch", -12_000, portfolio.EntryExpense)
	require.NoError(t, err)

	entries := svc.ViewLedger()
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
}
