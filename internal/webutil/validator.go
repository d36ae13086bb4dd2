package webutil

import (
	"errors"
	"log"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"teacher_training_api/internal/model"
)

// Validator is the validator instance shared by all handlers.
var Validator *validator.Validate

// Trans translates validation failures into client-facing messages.
var Trans ut.Translator

func init() {
	Validator = validator.New()

	// Report field names by their JSON tag so error messages match the wire
	// format the client actually sent.
	Validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	var found bool
	Trans, found = uni.GetTranslator("en")
	if !found {
		log.Fatal("translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Trans); err != nil {
		log.Fatal(err)
	}
}

// ValidateStruct runs the shared validator and converts the first failure
// into an AppError. Returns nil when the value is valid.
func ValidateStruct(v interface{}) *model.AppError {
	err := Validator.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		return model.NewAppError(
			"VALIDATION_ERROR",
			firstErr.Translate(Trans),
			firstErr.Field(),
			model.ErrValidation,
		)
	}

	// Validator-internal failure (e.g. a bad tag), not a field failure.
	return model.NewAppError("VALIDATION_ERROR", err.Error(), "", model.ErrValidation)
}
