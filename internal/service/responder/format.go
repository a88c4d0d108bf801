package responder

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatMillions renders a dataset value the way the figures are quoted in
// filings: "$198,270M". Values are whole millions, so fractions are rounded
// away.
func formatMillions(v decimal.Decimal) string {
	s := v.Round(0).String()

	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = groupThousands(s)

	if negative {
		return "-$" + s + "M"
	}
	return "$" + s + "M"
}

// formatPercent renders a growth fraction as a signed percentage with two
// decimal places, e.g. 0.0688 -> "6.88%".
func formatPercent(growth decimal.Decimal) string {
	return growth.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
