package currencypkg

import (
	"fmt"

	"github.com/go-petr/swagbank/pkg/jsonpkg"
)

// Amount holds a value of exactly one currency kind.
//
// The zero value is an empty amount of no kind; use SwagAmount or
// StyleAmount to build one.
type Amount struct {
	kind  Kind
	swag  Swag
	style Style
}

// SwagAmount wraps s.
func SwagAmount(s Swag) Amount {
	return Amount{kind: SWAG, swag: s}
}

// StyleAmount wraps s.
func StyleAmount(s Style) Amount {
	return Amount{kind: STYLE, style: s}
}

// ZeroAmount returns 0 in the given currency.
func ZeroAmount(k Kind) Amount {
	return Amount{kind: k}
}

// ParseAmount parses value in the given currency.
func ParseAmount(k Kind, value string) (Amount, error) {
	switch k {
	case SWAG:
		s, err := ParseSwag(value)
		if err != nil {
			return Amount{}, err
		}

		return SwagAmount(s), nil
	case STYLE:
		s, err := ParseStyle(value)
		if err != nil {
			return Amount{}, err
		}

		return StyleAmount(s), nil
	default:
		return Amount{}, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, k)
	}
}

// Kind returns the currency of a.
func (a Amount) Kind() Kind {
	return a.kind
}

// Swag returns the swag value and whether a is a swag amount.
func (a Amount) Swag() (Swag, bool) {
	return a.swag, a.kind == SWAG
}

// Style returns the style value and whether a is a style amount.
func (a Amount) Style() (Style, bool) {
	return a.style, a.kind == STYLE
}

// Add returns a+o. Both amounts must share a currency.
func (a Amount) Add(o Amount) (Amount, error) {
	if a.kind != o.kind {
		return Amount{}, ErrCurrencyMismatch
	}

	switch a.kind {
	case SWAG:
		s, err := a.swag.Add(o.swag)
		if err != nil {
			return Amount{}, err
		}

		return SwagAmount(s), nil
	case STYLE:
		return StyleAmount(a.style.Add(o.style)), nil
	}

	return Amount{}, ErrUnsupportedCurrency
}

// Sub returns a-o. Both amounts must share a currency and the result must not
// be negative.
func (a Amount) Sub(o Amount) (Amount, error) {
	if a.kind != o.kind {
		return Amount{}, ErrCurrencyMismatch
	}

	switch a.kind {
	case SWAG:
		s, err := a.swag.Sub(o.swag)
		if err != nil {
			return Amount{}, err
		}

		return SwagAmount(s), nil
	case STYLE:
		s, err := a.style.Sub(o.style)
		if err != nil {
			return Amount{}, err
		}

		return StyleAmount(s), nil
	}

	return Amount{}, ErrUnsupportedCurrency
}

// Split divides a into n equal floor shares and returns the share and the
// remainder. n must be positive.
func (a Amount) Split(n uint64) (Amount, Amount) {
	if a.kind == STYLE {
		share, rest := a.style.Split(n)
		return StyleAmount(share), StyleAmount(rest)
	}

	share, rest := a.swag.DivMod(n)

	return SwagAmount(share), SwagAmount(rest)
}

// IsZero reports whether a holds 0.
func (a Amount) IsZero() bool {
	if a.kind == STYLE {
		return a.style.IsZero()
	}

	return a.swag.IsZero()
}

// Equal reports whether a and o have the same currency and value.
func (a Amount) Equal(o Amount) bool {
	if a.kind != o.kind {
		return false
	}

	if a.kind == STYLE {
		return a.style.Equal(o.style)
	}

	return a.swag == o.swag
}

// String returns the value followed by the currency code.
func (a Amount) String() string {
	if a.kind == STYLE {
		return a.style.String() + " " + string(STYLE)
	}

	return a.swag.String() + " " + string(a.kind)
}

type amountJSON struct {
	Currency Kind   `json:"currency"`
	Value    string `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	v := amountJSON{Currency: a.kind, Value: a.swag.String()}
	if a.kind == STYLE {
		v.Value = a.style.String()
	}

	return jsonpkg.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var v amountJSON
	if err := jsonpkg.Unmarshal(b, &v); err != nil {
		return err
	}

	parsed, err := ParseAmount(v.Currency, v.Value)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}
