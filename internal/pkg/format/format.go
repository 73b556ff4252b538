// Package format renders calculator outputs for display. It is kept
// separate from the arithmetic so the calculators can be tested against
// exact numeric expectations.
package format

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidMonth indicates a month number outside 1-12. This is a
	// programming bug upstream, not a data condition.
	ErrInvalidMonth = errors.New("invalid month number: must be between 1 and 12")

	// ErrInvalidPhoneNumber indicates the input did not contain exactly
	// 10 digits.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

// Money renders a dollar amount: "$1234" when whole, "$1234.50"
// otherwise.
func Money(money float64) string {
	if money == math.Trunc(money) {
		return "$" + strconv.FormatFloat(money, 'f', -1, 64)
	}
	return fmt.Sprintf("$%.2f", money)
}

// Hours renders an hour count: "5" when whole, "5.75" otherwise.
func Hours(hours float64) string {
	if hours == math.Trunc(hours) {
		return strconv.FormatFloat(hours, 'f', -1, 64)
	}
	return fmt.Sprintf("%.2f", hours)
}

// Percentage renders a fraction as a percent string: 0.3 -> "30%",
// 0.2575 -> "25.75%".
func Percentage(fraction float64) string {
	hundred := fraction * 100
	if hundred == math.Trunc(hundred) {
		return strconv.FormatFloat(hundred, 'f', -1, 64) + "%"
	}
	return fmt.Sprintf("%.2f%%", hundred)
}

// ShortMonth returns the three-letter English month name for a month
// number (1 = Jan).
func ShortMonth(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", ErrInvalidMonth
	}
	return time.Month(month).String()[:3], nil
}

// FullMonth returns the full English month name for a month number.
func FullMonth(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", ErrInvalidMonth
	}
	return time.Month(month).String(), nil
}

// Pad surrounds short cell content with one space on each side so
// single-character values line up in rendered tables.
func Pad(s string) string {
	if len(s) < 3 {
		return " " + s + " "
	}
	return s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// PhoneNumber formats a 10-digit phone number. With hidden true the
// first six digits are masked: "(***) ***-7890".
func PhoneNumber(phone string, hidden bool) (string, error) {
	cleaned := digitsOnly(phone)
	if len(cleaned) != 10 {
		return "", ErrInvalidPhoneNumber
	}
	if hidden {
		return "(***) ***-" + cleaned[6:10], nil
	}
	return "(" + cleaned[0:3] + ") " + cleaned[3:6] + "-" + cleaned[6:10], nil
}

// LivePhoneNumber progressively formats a phone number as it is typed,
// using at most the first 10 digits.
func LivePhoneNumber(phone string) string {
	cleaned := digitsOnly(phone)
	switch {
	case len(cleaned) <= 3:
		return cleaned
	case len(cleaned) <= 6:
		return "(" + cleaned[0:3] + ") " + cleaned[3:]
	default:
		if len(cleaned) > 10 {
			cleaned = cleaned[:10]
		}
		return "(" + cleaned[0:3] + ") " + cleaned[3:6] + "-" + cleaned[6:]
	}
}
