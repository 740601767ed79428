package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators adds the custom binding rules to gin's validator:
// "dgte0" accepts a decimal amount that is zero or positive, and "dscale"
// accepts one that fits the ledger's amount columns.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("dgte0", decimalGTE0)
		_ = v.RegisterValidation("dscale", decimalStorable)
	})
}

// decimalValue exposes a decimal to the validator as its canonical string.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func decimalGTE0(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && !d.IsNegative()
}

func decimalStorable(fl validator.FieldLevel) bool {
	d, ok := fieldDecimal(fl)
	return ok && domain.IsStorableAmount(d)
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
