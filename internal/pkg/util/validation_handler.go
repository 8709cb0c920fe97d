package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidationError 首个校验失败的字段及其规则
type ValidationError struct {
	Field string
	Rule  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field [%s] failed on rule [%s]", e.Field, e.Rule)
}

// ValidateDTO 按结构体 validate 标签校验，返回首个失败字段
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			return &ValidationError{
				Field: firstError.Field(),
				Rule:  firstError.Tag(),
			}
		}
		return err
	}
	return nil
}
