package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Currency is static reference data, immutable for the process lifetime.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Currencies is the closed set of supported currency codes.
var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "MXN", Symbol: "Mex$", Name: "Mexican Peso"},
	{Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	{Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	{Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	{Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
}

// CurrencySymbol returns the display symbol for a currency code. Unrecognized
// codes echo the code itself; this never fails.
func CurrencySymbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return code
}

// FormatCurrency renders an amount with its currency symbol and two decimal
// places, with comma grouping on the integer part.
func FormatCurrency(amount float64, code string) string {
	return CurrencySymbol(code) + groupThousands(fmt.Sprintf("%.2f", amount))
}

func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}

// ParseAmount coerces free-form numeric input to a valid non-negative number,
// defaulting to 0 when unparseable. Partial entries like "-" or "." land here
// when an input field loses focus.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v != v {
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// IndianStates lists the states and union territories selectable for GST.
var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Delhi", "Jammu and Kashmir", "Ladakh", "Puducherry", "Chandigarh",
	"Andaman and Nicobar Islands", "Dadra and Nagar Haveli", "Daman and Diu", "Lakshadweep",
}
