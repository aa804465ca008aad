package news

import "time"

// Term is one financial term with definition and worked example.
type Term struct {
	Name       string `json:"name"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

var terms = []Term{
	{
		Name:       "Portfolio",
		Definition: "The full set of investment assets an investor holds. Spreading capital across stocks, bonds and cash reduces risk while pursuing returns.",
		Example:    "An investor holding 60% equities, 30% bonds and 10% cash is cushioned against swings in any single market.",
	},
	{
		Name:       "Diversification",
		Definition: "Spreading investment capital across unrelated assets or markets to reduce risk, the classic advice not to put all eggs in one basket.",
		Example:    "Buying IT, financial and healthcare stocks together limits the damage when one sector falls.",
	},
	{
		Name:       "ROI (Return on Investment)",
		Definition: "The profit earned relative to the amount invested, computed as (gain / invested amount) x 100.",
		Example:    "Turning 1,000,000 into 1,100,000 is an ROI of (100,000 / 1,000,000) x 100 = 10%.",
	},
	{
		Name:       "Volatility",
		Definition: "How much an asset's price moves. Higher volatility means larger swings, meaning higher potential returns together with higher risk.",
		Example:    "Cryptocurrencies routinely move more than 10% in a day, making them a highly volatile asset class.",
	},
	{
		Name:       "PER (Price-Earnings Ratio)",
		Definition: "Share price divided by earnings per share; a gauge of how expensively a stock trades. Lower ratios are generally read as cheaper.",
		Example:    "A 10,000 share price on 1,000 earnings per share is a PER of 10x.",
	},
}

// TermOfTheDay picks deterministically by calendar day, so every request on
// the same date sees the same term.
func TermOfTheDay(now time.Time) Term {
	return terms[now.YearDay()%len(terms)]
}
