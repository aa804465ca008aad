package models

import (
	"time"
)

// Instrument is one row of the reference catalog: everything the invest
// pages can put in a dropdown. Category-specific columns are zero-valued for
// the categories they do not apply to.
type Instrument struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Symbol   string `gorm:"column:symbol;uniqueIndex;not null" json:"symbol"`
	Name     string `gorm:"column:name;not null" json:"name"`
	Category string `gorm:"column:category;not null;index" json:"category"`

	// Bond fields.
	YieldRate    float64    `gorm:"column:yield_rate" json:"yield_rate,omitempty"`
	Rating       string     `gorm:"column:rating" json:"rating,omitempty"`
	MaturityDate *time.Time `gorm:"column:maturity_date" json:"maturity_date,omitempty"`

	// Savings-product fields.
	Bank         string  `gorm:"column:bank" json:"bank,omitempty"`
	InterestRate float64 `gorm:"column:interest_rate" json:"interest_rate,omitempty"`
	TermMonths   int     `gorm:"column:term_months" json:"term_months,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Instrument) TableName() string {
	return "Instruments"
}
