// Package portfolio holds the simulated investment aggregate: a cash account,
// the holding ledger, the append-only transaction log and the household
// ledger. All mutation goes through the aggregate's own methods; every
// operation validates first and mutates nothing on rejection. The aggregate
// does no I/O; prices arrive through a caller-supplied lookup and time
// through explicit arguments, so behavior is deterministic under test.
package portfolio

import "time"

// Portfolio is the aggregate root. Single owner, single writer; callers that
// share an instance across goroutines must serialize access themselves (the
// HTTP service does this with a mutex).
type Portfolio struct {
	CashBalance  float64             `json:"cashBalance"`
	Holdings     map[string]Holding  `json:"holdings"`
	Transactions []TransactionRecord `json:"transactions"`
	Ledger       []LedgerEntry       `json:"ledger"`
}

// New returns an empty portfolio seeded with startingCash.
func New(startingCash float64) *Portfolio {
	return &Portfolio{
		CashBalance:  startingCash,
		Holdings:     make(map[string]Holding),
		Transactions: []TransactionRecord{},
		Ledger:       []LedgerEntry{},
	}
}

// nextTxID returns the next transaction id. The log is append-only and ids
// are assigned in increasing order, so the last record always carries the
// maximum; rehydrating from persisted state needs no extra counter field.
func (p *Portfolio) nextTxID() int64 {
	if n := len(p.Transactions); n > 0 {
		return p.Transactions[n-1].ID + 1
	}
	return 1
}

// nextLedgerID scans for the maximum because ledger entries, unlike
// transactions, can be deleted.
func (p *Portfolio) nextLedgerID() int64 {
	var max int64
	for _, e := range p.Ledger {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// Buy debits quantity*price from cash and upserts the holding with a
// volume-weighted average cost. Returns the updated holding.
func (p *Portfolio) Buy(instrumentID string, quantity, price float64, now time.Time) (Holding, error) {
	if quantity <= 0 {
		return Holding{}, ErrInvalidQuantity
	}
	if price <= 0 {
		return Holding{}, ErrInvalidPrice
	}
	cost := quantity * price
	if cost > p.CashBalance {
		return Holding{}, ErrInsufficientFunds
	}

	h := p.Holdings[instrumentID]
	newQty := h.Quantity + quantity
	h.AverageCost = (h.Quantity*h.AverageCost + cost) / newQty
	h.Quantity = newQty

	p.CashBalance -= cost
	p.Holdings[instrumentID] = h
	p.Transactions = append(p.Transactions, TransactionRecord{
		ID:           p.nextTxID(),
		Timestamp:    now,
		Kind:         TxBuy,
		InstrumentID: instrumentID,
		Quantity:     quantity,
		Price:        price,
		Total:        cost,
	})
	return h, nil
}

// Sell credits quantity*price to cash and reduces the holding. The position
// is removed entirely when it reaches zero; the remaining average cost is
// never changed by a sell. Returns the realized gain
// quantity*(price-averageCost), which is reported but not persisted.
func (p *Portfolio) Sell(instrumentID string, quantity, price float64, now time.Time) (float64, error) {
	if quantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	if price <= 0 {
		return 0, ErrInvalidPrice
	}
	h, ok := p.Holdings[instrumentID]
	if !ok || h.Quantity < quantity {
		return 0, ErrInsufficientHoldings
	}

	proceeds := quantity * price
	realized := quantity * (price - h.AverageCost)

	h.Quantity -= quantity
	if h.Quantity == 0 {
		delete(p.Holdings, instrumentID)
	} else {
		p.Holdings[instrumentID] = h
	}
	p.CashBalance += proceeds
	p.Transactions = append(p.Transactions, TransactionRecord{
		ID:           p.nextTxID(),
		Timestamp:    now,
		Kind:         TxSell,
		InstrumentID: instrumentID,
		Quantity:     quantity,
		Price:        price,
		Total:        proceeds,
	})
	return realized, nil
}

// OpenSavings debits the principal from cash and records a savings-open
// transaction plus the derived household expense entry. The expected return
// uses simple interest, amount * (1 + rate/100 * term/12), fixed on the
// record at open time. Maturity is termMonths * 30 days from now.
func (p *Portfolio) OpenSavings(product string, amount, annualRate float64, termMonths int, now time.Time) (TransactionRecord, error) {
	if amount <= 0 {
		return TransactionRecord{}, ErrInvalidAmount
	}
	if termMonths <= 0 {
		return TransactionRecord{}, ErrInvalidTerm
	}
	if amount > p.CashBalance {
		return TransactionRecord{}, ErrInsufficientFunds
	}

	maturity := now.Add(time.Duration(termMonths) * 30 * 24 * time.Hour)
	rec := TransactionRecord{
		ID:             p.nextTxID(),
		Timestamp:      now,
		Kind:           TxSavingsOpen,
		InstrumentID:   product,
		Quantity:       1,
		Price:          amount,
		Total:          amount,
		InterestRate:   annualRate,
		TermMonths:     termMonths,
		MaturityDate:   &maturity,
		ExpectedReturn: amount * (1 + (annualRate/100)*(float64(termMonths)/12)),
	}

	p.CashBalance -= amount
	p.Transactions = append(p.Transactions, rec)
	txID := rec.ID
	p.Ledger = append(p.Ledger, LedgerEntry{
		ID:                   p.nextLedgerID(),
		Timestamp:            now,
		Category:             "savings",
		Description:          product + " opened",
		Amount:               -amount,
		Kind:                 EntryExpense,
		RelatedTransactionID: &txID,
	})
	return rec, nil
}

// SettleMatured settles every open savings transaction whose maturity date
// has passed: the stored expected return is credited to cash, the record is
// flagged matured (a terminal, one-way transition), and a savings-maturity
// transaction plus a household income entry are appended. Idempotent: a
// second call with the same now settles nothing. Returns the newly matured
// open records.
func (p *Portfolio) SettleMatured(now time.Time) []TransactionRecord {
	var matured []TransactionRecord
	for i := range p.Transactions {
		rec := &p.Transactions[i]
		if rec.Kind != TxSavingsOpen || rec.Matured {
			continue
		}
		if rec.MaturityDate == nil || rec.MaturityDate.After(now) {
			continue
		}

		rec.Matured = true
		p.CashBalance += rec.ExpectedReturn
		openID := rec.ID
		p.Transactions = append(p.Transactions, TransactionRecord{
			ID:           p.nextTxID(),
			Timestamp:    now,
			Kind:         TxSavingsMaturity,
			InstrumentID: rec.InstrumentID,
			Quantity:     1,
			Price:        rec.ExpectedReturn,
			Total:        rec.ExpectedReturn,
		})
		rec = &p.Transactions[i] // append may have moved the backing array
		p.Ledger = append(p.Ledger, LedgerEntry{
			ID:                   p.nextLedgerID(),
			Timestamp:            now,
			Category:             "savings",
			Description:          rec.InstrumentID + " matured",
			Amount:               rec.ExpectedReturn,
			Kind:                 EntryIncome,
			RelatedTransactionID: &openID,
		})
		matured = append(matured, *rec)
	}
	return matured
}

// AddEntry appends a household ledger entry. The ledger is a record, not a
// funds-custody mechanism, so there is no balance check.
func (p *Portfolio) AddEntry(category, description string, amount float64, kind EntryKind, now time.Time) (LedgerEntry, error) {
	if !kind.Valid() {
		return LedgerEntry{}, ErrInvalidEntryKind
	}
	e := LedgerEntry{
		ID:          p.nextLedgerID(),
		Timestamp:   now,
		Category:    category,
		Description: description,
		Amount:      amount,
		Kind:        kind,
	}
	p.Ledger = append(p.Ledger, e)
	return e, nil
}

// UpdateEntry shallow-merges patch into the entry with the given id. A
// missing id is a silent no-op; the return value reports whether an entry
// was found.
func (p *Portfolio) UpdateEntry(id int64, patch EntryPatch) bool {
	for i := range p.Ledger {
		if p.Ledger[i].ID != id {
			continue
		}
		if patch.Category != nil {
			p.Ledger[i].Category = *patch.Category
		}
		if patch.Description != nil {
			p.Ledger[i].Description = *patch.Description
		}
		if patch.Amount != nil {
			p.Ledger[i].Amount = *patch.Amount
		}
		if patch.Kind != nil && patch.Kind.Valid() {
			p.Ledger[i].Kind = *patch.Kind
		}
		return true
	}
	return false
}

// DeleteEntry removes the entry with the given id; no-op when absent.
func (p *Portfolio) DeleteEntry(id int64) bool {
	for i := range p.Ledger {
		if p.Ledger[i].ID == id {
			p.Ledger = append(p.Ledger[:i], p.Ledger[i+1:]...)
			return true
		}
	}
	return false
}

// RecentTransactions returns up to n records, newest first. n <= 0 returns
// the whole log.
func (p *Portfolio) RecentTransactions(n int) []TransactionRecord {
	total := len(p.Transactions)
	if n <= 0 || n > total {
		n = total
	}
	out := make([]TransactionRecord, 0, n)
	for i := total - 1; i >= total-n; i-- {
		out = append(out, p.Transactions[i])
	}
	return out
}

// OpenDeposits returns the savings-open records not yet settled.
func (p *Portfolio) OpenDeposits() []TransactionRecord {
	var open []TransactionRecord
	for _, rec := range p.Transactions {
		if rec.Kind == TxSavingsOpen && !rec.Matured {
			open = append(open, rec)
		}
	}
	return open
}

// Snapshot returns a deep copy of the aggregate. Used by the service to roll
// back when persistence fails after an otherwise successful operation.
func (p *Portfolio) Snapshot() *Portfolio {
	cp := &Portfolio{
		CashBalance:  p.CashBalance,
		Holdings:     make(map[string]Holding, len(p.Holdings)),
		Transactions: make([]TransactionRecord, len(p.Transactions)),
		Ledger:       make([]LedgerEntry, len(p.Ledger)),
	}
	for k, v := range p.Holdings {
		cp.Holdings[k] = v
	}
	copy(cp.Transactions, p.Transactions)
	copy(cp.Ledger, p.Ledger)
	return cp
}
