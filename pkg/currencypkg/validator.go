package currencypkg

import "github.com/go-playground/validator/v10"

// ValidCurrency is a validator.Func accepting supported currency codes.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if currency, ok := fl.Field().Interface().(string); ok {
		return IsSupportedCurrency(currency)
	}

	if currency, ok := fl.Field().Interface().(Kind); ok {
		return IsSupportedCurrency(string(currency))
	}

	return false
}
