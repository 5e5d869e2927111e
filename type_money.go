package boq

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an exact decimal amount with the estimate's currency, for
// display formatting only. All arithmetic in the bill happens on
// decimal.Decimal; Money exists at the rendering boundary.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M wraps an amount in the given currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the full currency definition.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's grapheme, thousand
// separators and fraction digits. Unknown currency codes fall back to the
// raw decimal.
func (m Money) String() string {
	cur := m.currency()
	if cur.Code != m.cur {
		return m.value.StringFixed(2)
	}
	shifted := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// Round returns the amount rounded to the currency's fraction digits.
func (m Money) Round() decimal.Decimal {
	return m.value.Round(int32(m.currency().Fraction))
}
