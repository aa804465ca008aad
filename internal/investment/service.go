package investment

import (
	"context"
	"sync"
	"time"

	"moneta-backend/internal/portfolio"
	"moneta-backend/internal/portfolio/store"

	"github.com/rs/zerolog/log"
)

// Service owns the live portfolio aggregate. It is the single writer: every
// mutating operation runs under the mutex, applies to the in-memory
// aggregate, then persists the full aggregate. If persistence fails the
// pre-operation snapshot is restored so memory and store never diverge.
type Service struct {
	Store        *store.Store
	StartingCash float64
	Now          func() time.Time

	mu sync.Mutex
	pf *portfolio.Portfolio
}

// NewService loads the persisted aggregate, or seeds a fresh one with
// startingCash on first run.
func NewService(ctx context.Context, st *store.Store, startingCash float64) (*Service, error) {
	s := &Service{Store: st, StartingCash: startingCash, Now: time.Now}

	pf, err := st.Load(ctx)
	if err != nil {
		return nil, err
	}
	if pf == nil {
		pf = portfolio.New(startingCash)
		if err := st.Save(ctx, pf); err != nil {
			return nil, err
		}
		log.Info().Float64("starting_cash", startingCash).Msg("Seeded new portfolio")
	}
	s.pf = pf
	return s, nil
}

func (s *Service) mutate(ctx context.Context, op func(p *portfolio.Portfolio) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.pf.Snapshot()
	if err := op(s.pf); err != nil {
		return err
	}
	if err := s.Store.Save(ctx, s.pf); err != nil {
		s.pf = before
		return err
	}
	return nil
}

// ViewPortfolio returns a deep copy; callers never see the live aggregate.
func (s *Service) ViewPortfolio() *portfolio.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pf.Snapshot()
}

func (s *Service) Buy(ctx context.Context, instrumentID string, quantity, price float64) (portfolio.Holding, error) {
	var h portfolio.Holding
	err := s.mutate(ctx, func(p *portfolio.Portfolio) error {
		var err error
		h, err = p.Buy(instrumentID, quantity, price, s.Now())
		return err
	})
	return h, err
}

func (s *Service) Sell(ctx context.Context, instrumentID string, quantity, price float64) (float64, error) {
	var realized float64
	err := s.mutate(ctx, func(p *portfolio.Portfolio) error {
		var err error
		realized, err = p.Sell(instrumentID, quantity, price, s.Now())
		return err
	})
	return realized, err
}

func (s *Service) OpenSavings(ctx context.Context, product string, amount, annualRate float64, termMonths int) (portfolio.TransactionRecord, error) {
	var rec portfolio.TransactionRecord
	err := s.mutate(ctx, func(p *portfolio.Portfolio) error {
		var err error
		rec, err = p.OpenSavings(product, amount, annualRate, termMonths, s.Now())
		return err
	})
	return rec, err
}

// SettleMatured settles due deposits once. When nothing is due the aggregate
// is unchanged and nothing is persisted.
func (s *Service) SettleMatured(ctx context.Context) ([]portfolio.TransactionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.pf.Snapshot()
	matured := s.pf.SettleMatured(s.Now())
	if len(matured) == 0 {
		return nil, nil
	}
	if err := s.Store.Save(ctx, s.pf); err != nil {
		s.pf = before
		return nil, err
	}
	log.Info().Int("settled", len(matured)).Msg("Matured deposits settled")
	return matured, nil
}

func (s *Service) RecentTransactions(n int) []portfolio.TransactionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pf.RecentTransactions(n)
}

// Valuation prices the aggregate with the supplied lookup and reports the
// total value plus the return against the configured starting cash.
func (s *Service) Valuation(lookup portfolio.PriceLookup) (value float64, ret float64, err error) {
	s.mu.Lock()
	pf := s.pf.Snapshot()
	s.mu.Unlock()

	// Lookup may block on the network; price outside the lock.
	value, err = pf.CurrentValue(lookup)
	if err != nil {
		return 0, 0, err
	}
	if s.StartingCash != 0 {
		ret = (value - s.StartingCash) / s.StartingCash
	}
	return value, ret, nil
}

func (s *Service) AddEntry(ctx context.Context, category, description string, amount float64, kind portfolio.EntryKind) (portfolio.LedgerEntry, error) {
	var e portfolio.LedgerEntry
	err := s.mutate(ctx, func(p *portfolio.Portfolio) error {
		var err error
		e, err = p.AddEntry(category, description, amount, kind, s.Now())
		return err
	})
	return e, err
}

func (s *Service) UpdateEntry(ctx context.Context, id int64, patch portfolio.EntryPatch) (bool, error) {
	var found bool
	err := s.mutate(ctx, func(p *portfolio.Portfolio) error {
		found = p.UpdateEntry(id, patch)
		return nil
	})
	return found, err
}

func (s *Service) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	var removed bool
	err := s.mutate(ctx, func(p *portfolio.Portfolio) error {
		removed = p.DeleteEntry(id)
		return nil
	})
	return removed, err
}

// ViewLedger returns the household ledger, newest first.
func (s *Service) ViewLedger() []portfolio.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.pf.Snapshot().Ledger
	out := make([]portfolio.LedgerEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		out = append(out, entries[i])
	}
	return out
}
