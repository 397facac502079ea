package format

import (
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	nonDigitPattern = regexp.MustCompile(`\D`)
	viPrinter       = message.NewPrinter(language.Vietnamese)
)

// FormatCurrency formats a VND amount with vi-VN digit grouping and no
// decimals and a non-breaking space before the symbol, e.g. "1.500.000 ₫".
func FormatCurrency(amount float64) string {
	return viPrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(0))) + "\u00a0₫"
}

// FormatPhoneNumber keeps only the digits and groups a 10-digit number as
// XXXX.XXX.XXX; other lengths come back as bare digits.
func FormatPhoneNumber(phone string) string {
	if phone == "" {
		return ""
	}

	digits := nonDigitPattern.ReplaceAllString(phone, "")
	if len(digits) == 10 {
		return digits[:4] + "." + digits[4:7] + "." + digits[7:]
	}

	return digits
}
