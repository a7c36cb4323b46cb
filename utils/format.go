package utils

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var farePrinter = message.NewPrinter(language.MustParse("en-IN"))

// FormatDuration renders minutes as "7h 25m", dropping the hour part when
// the duration is under an hour.
func FormatDuration(minutes float64) string {
	total := int(math.Round(minutes))
	hours := total / 60
	mins := total % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatFare renders a fare in rupees with Indian digit grouping and no
// decimals, e.g. 123456.7 -> "₹1,23,457".
func FormatFare(fare float64) string {
	return farePrinter.Sprintf("₹%v", number.Decimal(math.Round(fare), number.MaxFractionDigits(0)))
}
