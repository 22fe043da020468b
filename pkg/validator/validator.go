package validator

import (
	"log"
	"reflect"
	"strings"

	"github.com/grab-simulator/backend/pkg/otp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const OtpCodeTag = "otpcode"

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register installs json field naming and the custom tags on v.
func Register(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation(OtpCodeTag, otpCodeValidator)
	if err != nil {
		log.Fatal("register otpcode validator failed")
	}
}

var otpCodeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return otp.IsWellFormed(fl.Field().String())
}
