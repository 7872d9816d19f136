package service

import (
	"context"
	"errors"
	"reflect"

	"github.com/robertsn808/alii/internal/poserr"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// validateStruct runs go-playground/validator tags over req and maps
// failures to a poserr.ValidationError. Requests are rejected here
// before any storage call.
func validateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return poserr.NewValidation(fields)
}

// lookupError classifies a failed repository read: a missing row means
// the caller referenced something that does not exist, anything else is
// an infrastructure failure and must not masquerade as NotFound.
func lookupError(err error, entity, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return poserr.NewNotFound(entity, key)
	}
	return poserr.NewPersistence(entity+" lookup", err)
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}
