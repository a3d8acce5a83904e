package validation

import (
	"time"

	"hotel-backend/internal/domain/reservation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const ISODateTag = "isodate"

// RegisterValidators installs the custom binding rules on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return Register(v)
}

func Register(v *validator.Validate) error {
	return v.RegisterValidation(ISODateTag, isISODate)
}

// isISODate accepts calendar dates in the YYYY-MM-DD layout.
func isISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != len(reservation.DateLayout) {
		return false
	}
	_, err := time.Parse(reservation.DateLayout, s)
	return err == nil
}
