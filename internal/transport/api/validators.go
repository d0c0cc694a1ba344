package api

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/fsdevblog/virtnum/internal/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validateMaxBytes в отличии от тэга max который проверяет длину рун, - проверят длину байт в поле.
func validateMaxBytes(fl validator.FieldLevel) bool {
	param := fl.Param() // получаем значение из тега
	maxBytes, err := strconv.Atoi(param)
	if err != nil {
		return false
	}

	// нужно убедится что значение поля - строка.
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	return len([]byte(str)) <= maxBytes
}

// decimalValue значение поля decimal.Decimal. Благодаря decimalTypeFunc валидатор видит такие поля строками.
// Суммы точнее копейки не принимаются.
func decimalValue(fl validator.FieldLevel) (decimal.Decimal, bool) {
	str, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, domain.IsMoneyScale(d)
}

// validateDecimalPositive тэг dgt0: сумма строго больше нуля.
func validateDecimalPositive(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	return ok && d.IsPositive()
}

// validateDecimalNonNegative тэг dgte0: сумма не меньше нуля.
func validateDecimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := decimalValue(fl)
	return ok && !d.IsNegative()
}

func decimalTypeFunc(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("validator registration: unexpected engine %T", binding.Validator.Engine())
	}
	v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{})

	validations := map[string]validator.Func{
		"max_bytes": validateMaxBytes,
		"dgt0":      validateDecimalPositive,
		"dgte0":     validateDecimalNonNegative,
	}
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("validator registration: %s", err.Error())
		}
	}
	return nil
}
