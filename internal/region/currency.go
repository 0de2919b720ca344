package region

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencySymbols is the presentation lookup for amounts. A trailing space in
// the symbol means the code renders as a prefix word rather than a sign.
var currencySymbols = map[string]string{
	"AUD": "$",
	"NZD": "$",
	"USD": "$",
	"SGD": "S$",
	"GBP": "£",
	"EUR": "€",
	"INR": "₹",
	"AED": "AED ",
	"SAR": "SAR ",
	"QAR": "QAR ",
}

var printer = message.NewPrinter(language.English)

// FormatCurrency renders an amount for display, e.g. "AED 1,500.00".
// Unrecognized currency codes fall back to the upper-cased code plus a
// trailing space; this never errors.
func FormatCurrency(currencyCode string, amount float64) string {
	symbol, ok := currencySymbols[strings.ToUpper(currencyCode)]
	if !ok {
		symbol = strings.ToUpper(currencyCode) + " "
	}
	return symbol + printer.Sprintf("%.2f", amount)
}

// FormatAED renders a dirham amount, the common case on UAE surfaces.
func FormatAED(amount float64) string {
	return FormatCurrency("AED", amount)
}

// FormatFor renders an amount in the region's own currency.
func FormatFor(regionCode string, amount float64) string {
	return FormatCurrency(Get(regionCode).CurrencyCode, amount)
}
