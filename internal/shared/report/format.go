// Package report lays a DashboardResult out as titled tables of display
// strings. The console and every export format render the same sections.
package report

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotAvailable is shown in place of NaN and infinite values.
const NotAvailable = "-"

var printer = message.NewPrinter(language.English)

// Number formats a count with thousands separators. Values below 100 keep
// two decimals so small fleets stay visible.
func Number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	if math.Abs(v) < 100 && v != math.Trunc(v) {
		return printer.Sprintf("%.2f", v)
	}
	return printer.Sprintf("%.0f", v)
}

// Fraction formats a 0-1 share as a percentage.
func Fraction(v float64) string {
	return Percent(v * 100)
}

// Percent formats a 0-100 value.
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	return printer.Sprintf("%.2f%%", v)
}

// Currency formats whole dollars.
func Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return NotAvailable
	}
	if v < 0 {
		return printer.Sprintf("-$%.0f", -v)
	}
	return printer.Sprintf("$%.0f", v)
}
