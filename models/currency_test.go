package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrencySymbol(t *testing.T) {
	assert.Equal(t, "₹", CurrencySymbol("INR"))
	assert.Equal(t, "$", CurrencySymbol("USD"))

	t.Run("Unknown Code Echoes Itself", func(t *testing.T) {
		assert.Equal(t, "XYZ", CurrencySymbol("XYZ"))
	})
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "₹1,180.00", FormatCurrency(1180, "INR"))
	assert.Equal(t, "$0.50", FormatCurrency(0.5, "USD"))
	assert.Equal(t, "$1,234,567.89", FormatCurrency(1234567.89, "USD"))
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 7.5, ParseAmount("7.5"))
	assert.Equal(t, 0.0, ParseAmount("-"))
	assert.Equal(t, 0.0, ParseAmount("."))
	assert.Equal(t, 0.0, ParseAmount("abc"))
	assert.Equal(t, 0.0, ParseAmount("-12"))
	assert.Equal(t, 0.0, ParseAmount("NaN"))
}
