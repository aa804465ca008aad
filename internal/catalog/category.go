// Package catalog serves the instrument reference data behind the invest
// pages: which equities, cryptos, bonds and savings products exist, with
// their static attributes. Prices are not catalog data; they come from the
// market provider.
package catalog

import "errors"

var ErrUnknownCategory = errors.New("Unknown instrument category")
var ErrInstrumentNotFound = errors.New("Instrument not found")

// Category is an enumerated instrument category. Unknown strings are
// rejected at parse time instead of silently defaulting.
type Category string

const (
	CategoryEquity  Category = "equity"
	CategoryCrypto  Category = "crypto"
	CategoryBond    Category = "bond"
	CategorySavings Category = "savings"
)

// Categories lists all valid categories, for responses and validation.
var Categories = []Category{CategoryEquity, CategoryCrypto, CategoryBond, CategorySavings}

// ParseCategory validates a raw category string.
func ParseCategory(raw string) (Category, error) {
	c := Category(raw)
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}
