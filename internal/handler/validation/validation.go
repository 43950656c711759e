package validation

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"
	"sync"
	"time"

	"pawsalon/internal/domain/waitlist"
	"pawsalon/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var registerOnce sync.Once

// Register installs the custom tags and JSON field naming on gin's binding
// validator. Safe to call more than once.
func Register() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errs.New("gin binding engine is not go-playground/validator")
			return
		}
		err = Configure(v)
	})
	return err
}

func Configure(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonName)
	if err := v.RegisterValidation("time_preference", validateTimePreference); err != nil {
		return errs.Wrap(err, "register time_preference")
	}
	if err := v.RegisterValidation("calendar_date", validateCalendarDate); err != nil {
		return errs.Wrap(err, "register calendar_date")
	}
	return nil
}

func jsonName(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

func validateTimePreference(fl validator.FieldLevel) bool {
	_, err := waitlist.ParsePreference(fl.Field().String())
	return err == nil
}

func validateCalendarDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(dateLayout, fl.Field().String())
	return err == nil
}

// Translate turns a binding failure into field-level validation details.
// Decode failures without a field are reported against "body".
func Translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if errs.As(err, &fieldErrs) {
		var out errs.ValidationErrors
		for _, fe := range fieldErrs {
			out.Add(fieldPath(fe), message(fe))
		}
		return out.Err()
	}

	var typeErr *json.UnmarshalTypeError
	if errs.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return errs.Invalid(field, "has the wrong type, expected "+typeErr.Type.String())
	}

	var timeErr *time.ParseError
	if errs.As(err, &timeErr) {
		return errs.Invalid("body", "timestamps must be RFC 3339")
	}

	var syntaxErr *json.SyntaxError
	switch {
	case errs.Is(err, io.EOF):
		return errs.Invalid("body", "request body is required")
	case errs.As(err, &syntaxErr), errs.Is(err, io.ErrUnexpectedEOF):
		return errs.Invalid("body", "malformed JSON")
	default:
		return errs.Invalid("body", err.Error())
	}
}

// fieldPath drops the root struct name: CreateAppointmentRequest.guestInfo.email -> guestInfo.email
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without":
		return "is required"
	case "excluded_with":
		return "must not be combined with " + fe.Param()
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "time_preference":
		return "must be one of morning, afternoon, any"
	case "calendar_date":
		return "must be a date in YYYY-MM-DD format"
	case "dive":
		return "is invalid"
	default:
		return "failed " + fe.Tag() + " validation"
	}
}
