package auth

import (
	"talk-lab/domain"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// An empty topic falls back to General, so only a set one is checked
	_ = v.RegisterValidation("topic", func(fl validator.FieldLevel) bool {
		topic := fl.Field().String()
		return topic == "" || domain.Topic(topic).IsValid()
	})
	_ = v.RegisterValidation("reaction", func(fl validator.FieldLevel) bool {
		return domain.ReactionType(fl.Field().String()).IsValid()
	})
	return v
}

// Validate checks the `validate` tags of a request struct.
func Validate(request any) error {
	return validate.Struct(request)
}
