package checkout

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber matches the longest numeric prefix of an amount, so "12.5abc"
// reads as 12.5 and "abc" reads as nothing.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var cent = decimal.New(1, -2)

// ParseAmount reads user-typed money. Comma and dot are both accepted as the
// decimal separator; anything unreadable is zero. Values are bounded to the
// float64 range, so a huge exponent reads as zero instead of an
// arbitrary-precision number.
func ParseAmount(s string) decimal.Decimal {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)

	m := leadingNumber.FindString(s)
	if m == "" {
		return decimal.Zero
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// ParseDiscount is ParseAmount clamped to non-negative values.
func ParseDiscount(s string) decimal.Decimal {
	d := ParseAmount(s)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FormatAmount renders two decimals with a comma, e.g. "40,00".
func FormatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// withinCent reports whether a and b differ by at most 0.01.
func withinCent(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(cent)
}
