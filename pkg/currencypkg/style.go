package currencypkg

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// StylePrecision is the number of fractional digits a Style amount keeps.
const StylePrecision = 4

// Style is a non-negative amount of the secondary currency with at most
// StylePrecision fractional digits. Extra digits are truncated.
type Style struct {
	d decimal.Decimal
}

// NewStyle returns d truncated to StylePrecision digits, or
// ErrInvalidCurrencyValue if d is negative.
func NewStyle(d decimal.Decimal) (Style, error) {
	if d.IsNegative() {
		return Style{}, ErrInvalidCurrencyValue
	}

	return Style{d: d.Truncate(StylePrecision)}, nil
}

// ParseStyle parses a decimal string such as "12.5".
func ParseStyle(str string) (Style, error) {
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Style{}, ErrInvalidCurrencyValue
	}

	return NewStyle(d)
}

// MustStyle is like ParseStyle but panics on invalid input. Meant for constants and tests.
func MustStyle(str string) Style {
	s, err := ParseStyle(str)
	if err != nil {
		panic(err)
	}

	return s
}

// Decimal returns the underlying decimal value.
func (s Style) Decimal() decimal.Decimal {
	return s.d
}

// Add returns s+o.
func (s Style) Add(o Style) Style {
	return Style{d: s.d.Add(o.d)}
}

// Sub returns s-o, or ErrInvalidCurrencyValue when the result would be negative.
func (s Style) Sub(o Style) (Style, error) {
	r := s.d.Sub(o.d)
	if r.IsNegative() {
		return Style{}, ErrInvalidCurrencyValue
	}

	return Style{d: r}, nil
}

// Split returns the share each of n parts receives by floor division in units
// of 10^-StylePrecision, and the remainder left over. n must be positive.
func (s Style) Split(n uint64) (Style, Style) {
	units := s.d.Shift(StylePrecision).BigInt()
	share, rest := new(big.Int).QuoRem(units, new(big.Int).SetUint64(n), new(big.Int))

	return Style{d: decimal.NewFromBigInt(share, -StylePrecision)},
		Style{d: decimal.NewFromBigInt(rest, -StylePrecision)}
}

// Cmp compares s and o and returns -1, 0 or +1.
func (s Style) Cmp(o Style) int {
	return s.d.Cmp(o.d)
}

// Equal reports whether s and o hold the same value.
func (s Style) Equal(o Style) bool {
	return s.d.Equal(o.d)
}

// IsZero reports whether s is 0.
func (s Style) IsZero() bool {
	return s.d.IsZero()
}

// String returns the decimal representation without trailing zeros.
func (s Style) String() string {
	return s.d.String()
}

// MarshalText implements encoding.TextMarshaler.
func (s Style) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Style) UnmarshalText(b []byte) error {
	v, err := ParseStyle(string(b))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
