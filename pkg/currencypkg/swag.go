package currencypkg

import (
	"github.com/holiman/uint256"
)

// Swag is a non-negative whole amount of the primary currency.
//
// The zero value is 0 swag. Swag values are comparable with ==.
type Swag struct {
	v uint256.Int
}

// NewSwag returns n swag, or ErrInvalidCurrencyValue if n is negative.
func NewSwag(n int64) (Swag, error) {
	if n < 0 {
		return Swag{}, ErrInvalidCurrencyValue
	}

	return SwagFromUint64(uint64(n)), nil
}

// SwagFromUint64 returns n swag.
func SwagFromUint64(n uint64) Swag {
	var s Swag
	s.v.SetUint64(n)

	return s
}

// ParseSwag parses a base 10 whole number.
func ParseSwag(str string) (Swag, error) {
	if str == "" || str[0] == '-' || str[0] == '+' {
		return Swag{}, ErrInvalidCurrencyValue
	}

	v, err := uint256.FromDecimal(str)
	if err != nil {
		return Swag{}, ErrInvalidCurrencyValue
	}

	return Swag{v: *v}, nil
}

// MustSwag is like NewSwag but panics on negative input. Meant for constants and tests.
func MustSwag(n int64) Swag {
	s, err := NewSwag(n)
	if err != nil {
		panic(err)
	}

	return s
}

// Add returns s+o, or ErrCurrencyOverflow.
func (s Swag) Add(o Swag) (Swag, error) {
	var r Swag
	if _, overflow := r.v.AddOverflow(&s.v, &o.v); overflow {
		return Swag{}, ErrCurrencyOverflow
	}

	return r, nil
}

// Sub returns s-o, or ErrInvalidCurrencyValue when the result would be negative.
func (s Swag) Sub(o Swag) (Swag, error) {
	var r Swag
	if _, underflow := r.v.SubOverflow(&s.v, &o.v); underflow {
		return Swag{}, ErrInvalidCurrencyValue
	}

	return r, nil
}

// DivMod returns the floor quotient and remainder of s divided into n parts.
// n must be positive.
func (s Swag) DivMod(n uint64) (Swag, Swag) {
	var q, m Swag
	q.v.DivMod(&s.v, uint256.NewInt(n), &m.v)

	return q, m
}

// Min returns the smaller of s and o.
func (s Swag) Min(o Swag) Swag {
	if s.v.Lt(&o.v) {
		return s
	}

	return o
}

// Cmp compares s and o and returns -1, 0 or +1.
func (s Swag) Cmp(o Swag) int {
	return s.v.Cmp(&o.v)
}

// LessThan reports whether s < o.
func (s Swag) LessThan(o Swag) bool {
	return s.v.Lt(&o.v)
}

// IsZero reports whether s is 0.
func (s Swag) IsZero() bool {
	return s.v.IsZero()
}

// Uint64 returns the low 64 bits of s and whether s fits.
func (s Swag) Uint64() (uint64, bool) {
	return s.v.Uint64(), s.v.IsUint64()
}

// String returns the base 10 representation.
func (s Swag) String() string {
	return s.v.Dec()
}

// MarshalText implements encoding.TextMarshaler.
func (s Swag) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Swag) UnmarshalText(b []byte) error {
	v, err := ParseSwag(string(b))
	if err != nil {
		return err
	}

	*s = v

	return nil
}
