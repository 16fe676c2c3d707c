package validator

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"

	"github.com/fuelpark-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры. Ошибки валидации возвращаются как
// ErrInvalidRequest с описанием полей в Details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]interface{}, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return errors.ErrInvalidRequest.WithDetails(fields)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
