package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
)

// CurrencyCode is a 3-letter ISO-4217-like code, always upper case once normalized.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	ARS CurrencyCode = "ARS"
)

func (c CurrencyCode) String() string { return string(c) }

// ParseCurrencyCode trims and upper-cases raw input and checks it is 3 ASCII letters.
func ParseCurrencyCode(raw string) (CurrencyCode, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: currency code %q must be 3 letters", apperrors.ErrValidation, raw)
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", fmt.Errorf("%w: currency code %q must only contain letters", apperrors.ErrValidation, raw)
		}
	}
	return CurrencyCode(code), nil
}

// Currency represents a currency offered to users when recording expenses.
type Currency struct {
	CurrencyCode CurrencyCode `json:"currencyCode"` // e.g. "USD"
	Symbol       string       `json:"symbol"`       // e.g. "$"
	Name         string       `json:"name"`         // e.g. "US Dollar"
}

// SupportedCurrencies is the fixed list the client lets users pick from.
// Rate resolution itself accepts any well-formed code.
var SupportedCurrencies = []Currency{
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	{CurrencyCode: "MXN", Symbol: "$", Name: "Peso mexicano"},
	{CurrencyCode: "COP", Symbol: "$", Name: "Peso colombiano"},
	{CurrencyCode: "ARS", Symbol: "$", Name: "Peso argentino"},
	{CurrencyCode: "CLP", Symbol: "$", Name: "Peso chileno"},
	{CurrencyCode: "PEN", Symbol: "S/", Name: "Sol peruano"},
	{CurrencyCode: "BRL", Symbol: "R$", Name: "Real brasileño"},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
}
