package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var numericCodePattern = regexp.MustCompile(`^\d+$`)

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("notblank", notBlankValidator)
		if err != nil {
			log.Fatal("register notblank validator failed")
		}
		err = v.RegisterValidation("numericcode", numericCodeValidator)
		if err != nil {
			log.Fatal("register numericcode validator failed")
		}
	}
}

var notBlankValidator validator.Func = func(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

var numericCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return numericCodePattern.MatchString(strings.TrimSpace(fl.Field().String()))
}
