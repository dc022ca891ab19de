package transform

import (
	"fmt"
	"reflect"
	"strings"

	apperrors "textproxy/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	msgRequired = "This field is required."
	msgBlank    = "This field may not be blank."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterStructValidation(validateModeAndStyle, Request{})
	return v
}

func validateModeAndStyle(sl validator.StructLevel) {
	r := sl.Current().Interface().(Request)
	if r.Mode != "" && !r.Mode.Valid() {
		sl.ReportError(r.Mode, "mode", "Mode", "choice", string(r.Mode))
	}
	if r.Mode != ModeRewrite {
		return
	}
	switch {
	case r.Style == "":
		sl.ReportError(r.Style, "style", "Style", "required", "")
	case !r.Style.Valid():
		sl.ReportError(r.Style, "style", "Style", "choice", string(r.Style))
	}
}

// Validate checks r and returns a KindValidation *errors.APIError whose Fields
// map JSON field names to messages, or nil when r is acceptable.
func Validate(r Request) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.New(apperrors.KindInternal, 500, "validator_error", "validation failed").WithCause(err)
	}
	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return apperrors.Validation(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "notblank":
		return msgBlank
	case "choice":
		return fmt.Sprintf("%q is not a valid choice.", fe.Param())
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
