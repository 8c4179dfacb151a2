package validation

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default age bounds applied when the configuration carries none.
const (
	DefaultMinAge = 11
	DefaultMaxAge = 18
)

var (
	studentIDRegex = regexp.MustCompile(`^KJ\d{8}$`)
	teacherIDRegex = regexp.MustCompile(`^TJ\d{8}$`)
	nameRegex      = regexp.MustCompile(`^[A-Za-z ]+$`)
)

// classNames is the closed set of valid class labels: year groups 7-12 with
// sections A/B/C (year 12 only A/B), year 13 only A.
var classNames = []string{
	"7A", "7B", "7C", "8A", "8B", "8C",
	"9A", "9B", "9C", "10A", "10B", "10C",
	"11A", "11B", "11C", "12A", "12B", "13A",
}

// ClassNames returns the fixed class enumeration in display order.
func ClassNames() []string {
	out := make([]string, len(classNames))
	copy(out, classNames)
	return out
}

// ValidStudentID reports whether s is exactly "KJ" followed by 8 digits.
func ValidStudentID(s string) bool {
	return studentIDRegex.MatchString(s)
}

// ValidTeacherID reports whether s is exactly "TJ" followed by 8 digits.
func ValidTeacherID(s string) bool {
	return teacherIDRegex.MatchString(s)
}

// ValidName reports whether s contains only letters and spaces after trimming.
func ValidName(s string) bool {
	return nameRegex.MatchString(strings.TrimSpace(s))
}

// ValidAge reports whether the raw field value parses as an integer within
// [min, max]. Non-numeric input is a plain failure.
func ValidAge(raw string, min, max int) bool {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return age >= min && age <= max
}

// ValidClass reports membership in the fixed class enumeration.
func ValidClass(c string) bool {
	for _, name := range classNames {
		if c == name {
			return true
		}
	}
	return false
}

// New constructs a validator with the domain tags registered. The age bounds
// come from configuration and are closed over by the student_age tag.
func New(minAge, maxAge int) *validator.Validate {
	if minAge <= 0 || maxAge < minAge {
		minAge, maxAge = DefaultMinAge, DefaultMaxAge
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("student_id", func(fl validator.FieldLevel) bool {
		return ValidStudentID(fl.Field().String())
	})
	_ = validate.RegisterValidation("teacher_id", func(fl validator.FieldLevel) bool {
		return ValidTeacherID(fl.Field().String())
	})
	_ = validate.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return ValidName(fl.Field().String())
	})
	_ = validate.RegisterValidation("student_age", func(fl validator.FieldLevel) bool {
		return ValidAge(fl.Field().String(), minAge, maxAge)
	})
	_ = validate.RegisterValidation("class_name", func(fl validator.FieldLevel) bool {
		return ValidClass(fl.Field().String())
	})

	return validate
}

// tagMessages maps validation tags to the reasons shown to the caller.
var tagMessages = map[string]string{
	"required":    "is required",
	"student_id":  "must match the KJYYYYXXXX format",
	"teacher_id":  "must match the TJYYYYXXXX format",
	"person_name": "must contain only letters and spaces",
	"student_age": "must be a whole number within the allowed age range",
	"class_name":  "must be one of the listed classes",
}

// IsValidationError reports whether err carries field validation failures.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

// Explain converts a validator error into field-specific human-readable
// reasons. Non-validation errors yield a single generic entry.
func Explain(err error) []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{"invalid input"}
	}

	reasons := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		reasons = append(reasons, fe.Field()+" "+msg)
	}
	return reasons
}
