package validator

import (
	"sync"

	ierr "github.com/chosenhack/toprentbillfinal/internal/errors"
	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// ValidateRequest validates a request struct against its validate tags and
// returns a validation-marked error describing the first failing field.
func ValidateRequest(req interface{}) error {
	if err := getValidator().Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok || len(validationErrors) == 0 {
			return ierr.WithError(err).
				WithHint("Request validation failed").
				Mark(ierr.ErrValidation)
		}
		fe := validationErrors[0]
		return ierr.WithError(err).
			WithHintf("Field %s failed validation on the %s rule", fe.Field(), fe.Tag()).
			WithReportableDetails(map[string]interface{}{
				"field": fe.Field(),
				"rule":  fe.Tag(),
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
