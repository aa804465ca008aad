package portfolio

import "time"

// TxKind is the kind of an executed portfolio action.
type TxKind string

const (
	TxBuy             TxKind = "buy"
	TxSell            TxKind = "sell"
	TxSavingsOpen     TxKind = "savings-open"
	TxSavingsMaturity TxKind = "savings-maturity"
)

// EntryKind is the kind of a household ledger entry.
type EntryKind string

const (
	EntryIncome     EntryKind = "income"
	EntryExpense    EntryKind = "expense"
	EntryInvestment EntryKind = "investment"
)

// Valid reports whether k is one of the known entry kinds. Ledger entries are
// rejected at construction rather than defaulting on unknown strings.
func (k EntryKind) Valid() bool {
	switch k {
	case EntryIncome, EntryExpense, EntryInvestment:
		return true
	}
	return false
}

// Holding is one position in the holding ledger. The instrument identifier is
// the map key in Portfolio.Holdings; AverageCost is the volume-weighted mean
// purchase price, recomputed on every buy and never changed by a sell.
type Holding struct {
	Quantity    float64 `json:"quantity"`
	AverageCost float64 `json:"averageCost"`
}

// TransactionRecord is one append-only entry in the transaction log.
// Immutable once created, except the Matured flag on a savings-open record,
// which transitions false -> true exactly once when the deposit is settled.
type TransactionRecord struct {
	ID           int64     `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	Kind         TxKind    `json:"kind"`
	InstrumentID string    `json:"instrumentId"`
	Quantity     float64   `json:"quantity"`
	Price        float64   `json:"price"`
	Total        float64   `json:"total"`

	// Savings-only fields. ExpectedReturn is fixed at open time; settlement
	// pays out the stored value so later rate changes cannot reprice past
	// commitments.
	InterestRate   float64    `json:"interestRate,omitempty"`
	TermMonths     int        `json:"termMonths,omitempty"`
	MaturityDate   *time.Time `json:"maturityDate,omitempty"`
	ExpectedReturn float64    `json:"expectedReturn,omitempty"`
	Matured        bool       `json:"matured,omitempty"`
}

// LedgerEntry is one row of the household ledger. Amount is signed: positive
// for income, negative for expenses.
type LedgerEntry struct {
	ID                   int64     `json:"id"`
	Timestamp            time.Time `json:"timestamp"`
	Category             string    `json:"category"`
	Description          string    `json:"description"`
	Amount               float64   `json:"amount"`
	Kind                 EntryKind `json:"kind"`
	RelatedTransactionID *int64    `json:"relatedTransactionId,omitempty"`
}

// EntryPatch is a partial update for a ledger entry. Nil fields are left
// untouched; set fields replace the existing value.
type EntryPatch struct {
	Category    *string
	Description *string
	Amount      *float64
	Kind        *EntryKind
}
