package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	"chat-contracts/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// Report field paths by json name so issues match the wire contract.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Usernames are not a tag: the primitive must tell a blank value apart
	// from a malformed one, which a single pass/fail predicate cannot.
	must(validate.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		v := strings.TrimSpace(fl.Field().String())
		// Blank optional names are let through; required-ness is the
		// "required" tag's job.
		return v == "" || personNameRe.MatchString(v)
	}))
	must(validate.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return domain.Role(fl.Field().String()).Valid()
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Struct runs the tag engine over v and converts every field error into an
// Issue. All fields are checked; nothing fails fast.
func Struct(v any) Issues {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: v was not a struct at all.
		return Issues{{Message: err.Error()}}
	}
	return lo.Map(fieldErrs, func(fe validator.FieldError, _ int) Issue {
		return Issue{Path: pathOf(fe), Message: messageFor(fe)}
	})
}

// pathOf strips the root struct name from the namespace, leaving the json
// path: "EditUserRequest.avatar" -> "avatar".
func pathOf(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "personname":
		return MsgNameInvalid
	case "role":
		return "must be a known role"
	case "url", "http_url":
		return "must be a valid URL"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "failed the " + fe.Tag() + " rule"
	}
}
