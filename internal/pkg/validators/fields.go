package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("validation failed")

// Rules reported by ValidationError
const (
	RuleRequired       = "required"
	RuleMaxLength      = "maximum length"
	RulePrintableASCII = "printable ASCII"
	RuleAllowedValues  = "allowed values"
	RuleDigits         = "decimal digits"
	RuleRange          = "range"
)

// ValidationError names the offending field, its maximum length (0 when not length-bounded) and the violated rule.
type ValidationError struct {
	Field     string
	MaxLength int
	Rule      string
}

func (e *ValidationError) Error() string {
	if e.MaxLength > 0 {
		return fmt.Sprintf("field %q (max length %d) violates rule %q", e.Field, e.MaxLength, e.Rule)
	}
	return fmt.Sprintf("field %q violates rule %q", e.Field, e.Rule)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance with the custom tags registered:
//
//	digits      every character is '0'-'9'
//	oneofci     case-insensitive oneof
//	rsakeysize  one of SupportedRSAKeySizes
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("digits", DigitsValidation)
		_ = v.RegisterValidation("oneofci", OneOfFoldValidation)
		_ = v.RegisterValidation("rsakeysize", RSAKeySizeValidation)
		validate = v
	})
	return validate
}

// ValidateStruct validates s and converts the first failure into a *ValidationError.
// maxLengths maps struct field names to their maximum lengths.
func ValidateStruct(s interface{}, maxLengths map[string]int) error {
	if s == nil || (reflect.ValueOf(s).Kind() == reflect.Ptr && reflect.ValueOf(s).IsNil()) {
		return &ValidationError{Field: "value", Rule: RuleRequired}
	}

	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return fmt.Errorf("validation error: %w", err)
	}

	fieldErr := validationErrors[0]
	return &ValidationError{
		Field:     fieldErr.Field(),
		MaxLength: maxLengths[fieldErr.Field()],
		Rule:      ruleForTag(fieldErr.Tag()),
	}
}

// ValidateString checks a free-text field: no longer than maxLength and made of
// printable ASCII only (codes 32 to 126). An empty value is valid and encodes as padding.
func ValidateString(field, value string, maxLength int) error {
	if len(value) > maxLength {
		return &ValidationError{Field: field, MaxLength: maxLength, Rule: RuleMaxLength}
	}
	if !IsPrintableASCII(value) {
		return &ValidationError{Field: field, MaxLength: maxLength, Rule: RulePrintableASCII}
	}
	return nil
}

// IsPrintableASCII reports whether every byte of s lies in [32,126].
func IsPrintableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 32 || s[i] > 126 {
			return false
		}
	}
	return true
}

// IsDigits reports whether s is non-empty and made of '0'-'9' only.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// DigitsValidation implements the "digits" tag.
func DigitsValidation(fl validator.FieldLevel) bool {
	return IsDigits(fl.Field().String())
}

// OneOfFoldValidation implements the "oneofci" tag, e.g. `validate:"oneofci=BG EN"`.
func OneOfFoldValidation(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, allowed := range strings.Fields(fl.Param()) {
		if strings.EqualFold(value, allowed) {
			return true
		}
	}
	return false
}

func ruleForTag(tag string) string {
	switch tag {
	case "required":
		return RuleRequired
	case "max", "len":
		return RuleMaxLength
	case "printascii":
		return RulePrintableASCII
	case "oneof", "oneofci":
		return RuleAllowedValues
	case "digits", "numeric":
		return RuleDigits
	case "gte", "lte", "min":
		return RuleRange
	default:
		return tag
	}
}
