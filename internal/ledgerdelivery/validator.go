package ledgerdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/go-petr/swagbank/internal/domain"
	"github.com/go-petr/swagbank/pkg/currencypkg"
)

// ValidTimezone validates whether the field names a usable IANA time zone.
var ValidTimezone validator.Func = func(fl validator.FieldLevel) bool {
	if tz, ok := fl.Field().Interface().(string); ok {
		_, err := domain.LoadTimezone(tz)
		return err == nil
	}

	return false
}

// ValidPower validates whether the field names a known power.
var ValidPower validator.Func = func(fl validator.FieldLevel) bool {
	if p, ok := fl.Field().Interface().(string); ok {
		return domain.PowerKind(p).IsValid()
	}

	return false
}

// RegisterValidators adds the currency, timezone and power tags to v.
func RegisterValidators(v *validator.Validate) error {
	for tag, fn := range map[string]validator.Func{
		"currency": currencypkg.ValidCurrency,
		"timezone": ValidTimezone,
		"power":    ValidPower,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}
