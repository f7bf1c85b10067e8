// Package currencypkg provides the two ledger currencies and the amount type
// that carries exactly one of them.
package currencypkg

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCurrencyValue indicates a negative or malformed amount.
	ErrInvalidCurrencyValue = errors.New("invalid currency value")
	// ErrCurrencyMismatch indicates arithmetic between unlike currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrCurrencyOverflow indicates that an amount exceeds the representable range.
	ErrCurrencyOverflow = errors.New("currency overflow")
	// ErrUnsupportedCurrency indicates an unknown currency code.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// Kind identifies one of the supported currencies.
type Kind string

// Constants for all supported currencies.
const (
	SWAG  Kind = "SWAG"
	STYLE Kind = "STYLE"
)

// IsSupportedCurrency returns true if the currency is supported.
func IsSupportedCurrency(currency string) bool {
	switch Kind(currency) {
	case SWAG, STYLE:
		return true
	default:
		return false
	}
}

// ParseKind converts a currency code into a Kind.
func ParseKind(currency string) (Kind, error) {
	if !IsSupportedCurrency(currency) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, currency)
	}

	return Kind(currency), nil
}
