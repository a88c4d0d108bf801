package models

import "strings"

// Metric enumerates the financial figures tracked per company and fiscal year.
type Metric string

const (
	MetricTotalRevenue      Metric = "Total Revenue"
	MetricNetIncome         Metric = "Net Income"
	MetricTotalAssets       Metric = "Total Assets"
	MetricTotalLiabilities  Metric = "Total Liabilities"
	MetricOperatingCashFlow Metric = "Cash Flow from Operating Activities"
)

// Metrics returns the tracked metrics in canonical reporting order.
func Metrics() []Metric {
	return []Metric{
		MetricTotalRevenue,
		MetricNetIncome,
		MetricTotalAssets,
		MetricTotalLiabilities,
		MetricOperatingCashFlow,
	}
}

// ParseMetric resolves a column header or display name to a Metric,
// case-insensitively.
func ParseMetric(s string) (Metric, bool) {
	for _, m := range Metrics() {
		if strings.EqualFold(strings.TrimSpace(s), string(m)) {
			return m, true
		}
	}
	return "", false
}
