//go:build unit
// +build unit

package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `validate:"required,max=5,printascii"`
	Code     string `validate:"len=2,digits"`
	Language string `validate:"required,oneofci=BG EN"`
}

var sampleMaxLengths = map[string]int{"Name": 5, "Code": 2}

func TestIsPrintableASCII(t *testing.T) {
	assert.True(t, IsPrintableASCII(""))
	assert.True(t, IsPrintableASCII(" ~Order 42"))
	assert.False(t, IsPrintableASCII("tab\there"))
	assert.False(t, IsPrintableASCII("del\x7f"))
	assert.False(t, IsPrintableASCII("поръчка"))
}

func TestIsDigits(t *testing.T) {
	assert.True(t, IsDigits("0123456789"))
	assert.False(t, IsDigits(""))
	assert.False(t, IsDigits("12a"))
	assert.False(t, IsDigits("-1"))
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name  string
		value string
		rule  string
	}{
		{"too long", "123456789", RuleMaxLength},
		{"control character", "ab\ncd", RulePrintableASCII},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateString("TerminalID", tt.value, 8)
			require.Error(t, err)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, "TerminalID", validationErr.Field)
			assert.Equal(t, 8, validationErr.MaxLength)
			assert.Equal(t, tt.rule, validationErr.Rule)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	assert.NoError(t, ValidateString("TerminalID", "62160001", 8))
	assert.NoError(t, ValidateString("Description", "", 125))
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(&sample{Name: "abc", Code: "05", Language: "bg"}, sampleMaxLengths))
	})

	t.Run("nil pointer", func(t *testing.T) {
		var s *sample
		err := ValidateStruct(s, sampleMaxLengths)
		assert.ErrorIs(t, err, ErrValidation)
	})

	tests := []struct {
		name      string
		value     sample
		field     string
		maxLength int
		rule      string
	}{
		{"name missing", sample{Code: "00", Language: "EN"}, "Name", 5, RuleRequired},
		{"name too long", sample{Name: "abcdef", Code: "00", Language: "EN"}, "Name", 5, RuleMaxLength},
		{"name not printable", sample{Name: "a\tb", Code: "00", Language: "EN"}, "Name", 5, RulePrintableASCII},
		{"code not digits", sample{Name: "a", Code: "0x", Language: "EN"}, "Code", 2, RuleDigits},
		{"language not allowed", sample{Name: "a", Code: "00", Language: "DE"}, "Language", 0, RuleAllowedValues},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.value, sampleMaxLengths)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
			assert.Equal(t, tt.maxLength, validationErr.MaxLength)
			assert.Equal(t, tt.rule, validationErr.Rule)
		})
	}
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Field: "OrderNumber", MaxLength: 15, Rule: RuleMaxLength}
	assert.Equal(t, `field "OrderNumber" (max length 15) violates rule "maximum length"`, err.Error())

	err = &ValidationError{Field: "Language", Rule: RuleAllowedValues}
	assert.Equal(t, `field "Language" violates rule "allowed values"`, err.Error())
}
