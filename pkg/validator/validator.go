package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const PhoneNumberTag = "phonenumber"

// phonePattern matches a 10-digit mobile number with a leading 6-9.
var phonePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// RegisterGinValidator wires json field names and custom tags into gin's binding validator.
func RegisterGinValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation(PhoneNumberTag, phoneNumberValidator)
}

var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsPhoneNumber(fl.Field().String())
}

func IsPhoneNumber(phone string) bool {
	return phonePattern.MatchString(phone)
}
