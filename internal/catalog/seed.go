package catalog

import (
	"time"

	"moneta-backend/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// seedInstruments is the default catalog the invest pages offer.
var seedInstruments = []models.Instrument{
	// Equities
	{Symbol: "005930.KS", Name: "Samsung Electronics", Category: string(CategoryEquity)},
	{Symbol: "000660.KS", Name: "SK Hynix", Category: string(CategoryEquity)},
	{Symbol: "035420.KS", Name: "NAVER", Category: string(CategoryEquity)},
	{Symbol: "005380.KS", Name: "Hyundai Motor", Category: string(CategoryEquity)},
	{Symbol: "AAPL", Name: "Apple", Category: string(CategoryEquity)},
	{Symbol: "TSLA", Name: "Tesla", Category: string(CategoryEquity)},

	// Cryptos
	{Symbol: "BTC-USD", Name: "Bitcoin", Category: string(CategoryCrypto)},
	{Symbol: "ETH-USD", Name: "Ethereum", Category: string(CategoryCrypto)},
	{Symbol: "XRP-USD", Name: "Ripple", Category: string(CategoryCrypto)},

	// Bonds
	{Symbol: "KTB-10Y", Name: "Korea Treasury Bond 10Y", Category: string(CategoryBond), YieldRate: 3.2, Rating: "AAA", MaturityDate: date(2034, 1, 15)},
	{Symbol: "KTB-5Y", Name: "Korea Treasury Bond 5Y", Category: string(CategoryBond), YieldRate: 3.0, Rating: "AAA", MaturityDate: date(2029, 1, 15)},
	{Symbol: "KTB-3Y", Name: "Korea Treasury Bond 3Y", Category: string(CategoryBond), YieldRate: 2.8, Rating: "AAA", MaturityDate: date(2027, 1, 15)},
	{Symbol: "SAMSUNG-CORP", Name: "Samsung Electronics Corporate Bond", Category: string(CategoryBond), YieldRate: 3.5, Rating: "AA+", MaturityDate: date(2026, 12, 15)},
	{Symbol: "LGCHEM-CORP", Name: "LG Chem Corporate Bond", Category: string(CategoryBond), YieldRate: 3.8, Rating: "AA", MaturityDate: date(2027, 6, 15)},
	{Symbol: "HYUNDAI-CORP", Name: "Hyundai Motor Corporate Bond", Category: string(CategoryBond), YieldRate: 4.0, Rating: "AA-", MaturityDate: date(2025, 9, 15)},
	{Symbol: "SEOUL-MUNI", Name: "Seoul Municipal Bond", Category: string(CategoryBond), YieldRate: 3.3, Rating: "AA+", MaturityDate: date(2028, 3, 15)},
	{Symbol: "BUSAN-MUNI", Name: "Busan Municipal Bond", Category: string(CategoryBond), YieldRate: 3.4, Rating: "AA", MaturityDate: date(2026, 11, 15)},

	// Savings products
	{Symbol: "KB-STAR-12M", Name: "KB Star Time Deposit", Category: string(CategorySavings), Bank: "KB Kookmin", InterestRate: 3.5, TermMonths: 12},
	{Symbol: "SHINHAN-24M", Name: "Shinhan Installment Savings", Category: string(CategorySavings), Bank: "Shinhan", InterestRate: 3.8, TermMonths: 24},
	{Symbol: "WOORI-6M", Name: "Woori Time Deposit", Category: string(CategorySavings), Bank: "Woori", InterestRate: 3.3, TermMonths: 6},
	{Symbol: "HANA-36M", Name: "Hana Installment Savings", Category: string(CategorySavings), Bank: "Hana", InterestRate: 4.0, TermMonths: 36},
}

// Seed inserts the default catalog when the table is empty. Re-running on a
// populated catalog is a no-op.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Instrument{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	rows := make([]models.Instrument, len(seedInstruments))
	copy(rows, seedInstruments)
	if err := db.Create(&rows).Error; err != nil {
		return err
	}
	log.Info().Int("instruments", len(rows)).Msg("Seeded instrument catalog")
	return nil
}
