package fields

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validatorOnce sync.Once
var validate *validator.Validate

// Validator returns the shared validate instance with our custom rules
// registered. It uses the `binding` tag so the same structs work with gin.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New()
		validate.SetTagName("binding")

		// registration error only happens for an empty tag name
		_ = validate.RegisterValidation("nationalid", nationalID)

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// nationalID accepts 7 to 9 digits, the shapes a DNI takes once dots and
// spaces are stripped.
func nationalID(fl validator.FieldLevel) bool {
	v := strings.TrimSpace(fl.Field().String())
	v = strings.NewReplacer(".", "", " ", "").Replace(v)
	if len(v) < 7 || len(v) > 9 {
		return false
	}
	for _, r := range v {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
