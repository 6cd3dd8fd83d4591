package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStruct(t *testing.T) {
	type req struct {
		BillerName string `validate:"required"`
		BillNumber string `validate:"required"`
	}

	assert.Error(t, Struct(req{}))
	assert.Error(t, Struct(req{BillerName: "K-Electric"}))
	assert.NoError(t, Struct(req{BillerName: "K-Electric", BillNumber: "KE-778899"}))
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("ali@example.com"))
	assert.True(t, ValidEmail("sara.ahmed+test@bank.pk"))
	assert.False(t, ValidEmail(""))
	assert.False(t, ValidEmail("not-an-email"))
	assert.False(t, ValidEmail("missing@domain"))
}

func TestValidAccountNumber(t *testing.T) {
	assert.True(t, ValidAccountNumber("1234567890123456"))
	assert.True(t, ValidAccountNumber(" 1234567890123456 "))
	assert.False(t, ValidAccountNumber("123456789012345"))
	assert.False(t, ValidAccountNumber("12345678901234567"))
	assert.False(t, ValidAccountNumber("12345678901234ab"))
	assert.False(t, ValidAccountNumber(""))
}

func TestValidAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   bool
	}{
		{"10", true},
		{"10.50", true},
		{"0.01", true},
		{"0", false},
		{"-5.00", false},
		{"1.005", false},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestStrongPassword(t *testing.T) {
	assert.True(t, StrongPassword("str0ng!pass"))
	assert.True(t, StrongPassword("12345678#"))
	assert.False(t, StrongPassword("short!"))
	assert.False(t, StrongPassword("noSpecials123"))
	assert.False(t, StrongPassword(""))
}

func TestHasSpecialChar(t *testing.T) {
	assert.True(t, HasSpecialChar("abc!"))
	assert.True(t, HasSpecialChar("with space"))
	assert.False(t, HasSpecialChar("abcDEF123"))
}
