package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hhmmRe = regexp.MustCompile(`^\d{1,2}[:.]\d{2}$`)

// RegisterValidators installs the custom binding rules. hhmm accepts
// the clock formats the legacy labels used ("8:00", "08:00", "8.00").
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRe.MatchString(fl.Field().String())
	})
}
