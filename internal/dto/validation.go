package dto

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidations teaches the binding validator about decimal.Decimal
// so numeric tags (gt, gte, ...) work on money fields. Must be called once
// at startup with gin's binding engine.
func RegisterValidations(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}
