package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// The country_code and airport_iata fields must be uppercase letter codes;
// length is enforced separately by the len tag.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("uppercode", isUpperCode)
	}
}

func isUpperCode(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, r := range value {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return value != ""
}
