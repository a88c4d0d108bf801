package models

import "github.com/shopspring/decimal"

// FinancialRecord is a single observed figure: one metric for one company in
// one fiscal year. Values are expressed in millions of US dollars.
type FinancialRecord struct {
	Company Company         `json:"company"`
	Metric  Metric          `json:"metric"`
	Year    int             `json:"fiscal_year"`
	Value   decimal.Decimal `json:"value"`
}
