package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatPrice formats a price with comma thousands separators, e.g.
// 45000 -> "45,000" and 1234.5 -> "1,234.5".
func FormatPrice(price float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprint(number.Decimal(price))
}

// FormatMoney is FormatPrice with a leading "$"
func FormatMoney(price float64) string {
	return "$" + FormatPrice(price)
}
