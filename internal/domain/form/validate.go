package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MaxOrdering = 99
	MaxTitleLen = 1000
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
	return v
}

// ValidationError lists every constraint a form document violates.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid form: " + strings.Join(e.Problems, "; ")
}

func (e *ValidationError) add(format string, args ...any) {
	e.Problems = append(e.Problems, fmt.Sprintf(format, args...))
}

func (e *ValidationError) orNil() error {
	if len(e.Problems) == 0 {
		return nil
	}
	return e
}

// Validate checks a form about to be created.
func Validate(f *Form) error {
	verr := &ValidationError{}
	if f.IsPublic == nil {
		verr.add("isPublic is required")
	}
	if f.Filled == nil {
		verr.add("filled is required")
	}
	if f.Common == nil {
		verr.add("common is required")
	}
	check(f, verr)
	return verr.orNil()
}

// ValidateReplacement checks a form that replaces a stored document. Flags
// omitted from a replacement are dropped rather than rejected.
func ValidateReplacement(f *Form) error {
	verr := &ValidationError{}
	check(f, verr)
	return verr.orNil()
}

func check(f *Form, verr *ValidationError) {
	if err := validate.Struct(f); err != nil {
		collect(verr, "", err)
	}

	seen := make(map[int]string)
	f.Questions.Each(func(t QuestionType, i int, q Question) {
		path := fmt.Sprintf("questions.%s[%d]", t, i)
		if err := validate.Struct(q); err != nil {
			collect(verr, path+".", err)
		}
		o := q.Header().OrderingValue()
		if o < 0 || o > MaxOrdering {
			return
		}
		if prev, dup := seen[o]; dup {
			verr.add("%s.ordering %d is already used by %s", path, o, prev)
			return
		}
		seen[o] = path
	})
}

func collect(verr *ValidationError, prefix string, err error) {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		verr.add("%s%v", prefix, err)
		return
	}
	for _, fe := range fieldErrs {
		verr.add("%s%s", prefix, describe(fe))
	}
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
