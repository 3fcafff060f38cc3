// internal/format/format.go
package format

import (
	"fmt"
	"math"
)

// DefaultNA is the placeholder substituted for missing values.
const DefaultNA = "N/A"

// Formatter renders canonical metric values as display strings. All
// methods are pure: nil, NaN and infinite inputs yield the placeholder.
type Formatter struct {
	na string
}

// New creates a Formatter with the default placeholder.
func New() *Formatter {
	return &Formatter{na: DefaultNA}
}

// NewWithPlaceholder creates a Formatter with a custom not-available text.
func NewWithPlaceholder(na string) *Formatter {
	if na == "" {
		na = DefaultNA
	}
	return &Formatter{na: na}
}

// NA returns the configured placeholder.
func (f *Formatter) NA() string { return f.na }

func usable(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// PercentSigned renders a decimal fraction as a signed percentage with one
// decimal place: 0.123 -> "+12.3%", -0.05 -> "-5.0%".
func (f *Formatter) PercentSigned(v *float64) string {
	if !usable(v) {
		return f.na
	}
	if *v >= 0 {
		return fmt.Sprintf("+%.1f%%", *v*100)
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}

// Percent renders a decimal fraction as a percentage without a forced sign.
func (f *Formatter) Percent(v *float64) string {
	if !usable(v) {
		return f.na
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}

// Ratio renders a multiple with one decimal place: 1.52 -> "1.5x".
func (f *Formatter) Ratio(v *float64) string {
	if !usable(v) {
		return f.na
	}
	return fmt.Sprintf("%.1fx", *v)
}

// Currency renders an absolute amount with a magnitude suffix, preserving
// sign: 1.23e12 -> "1.2T", -4.5e9 -> "-4.5B", 2.5e6 -> "2.5M", 950 -> "950".
func (f *Formatter) Currency(v *float64) string {
	if !usable(v) {
		return f.na
	}
	abs := math.Abs(*v)
	sign := ""
	if *v < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%s%.1fT", sign, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s%.1fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s%.1fM", sign, abs/1e6)
	default:
		return fmt.Sprintf("%s%.0f", sign, abs)
	}
}

// ChangePct renders an already-multiplied percentage move (index changes
// arrive in percent, not decimal fractions): 1.25 -> "+1.25%".
func (f *Formatter) ChangePct(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+%.2f%%", v)
	}
	return fmt.Sprintf("%.2f%%", v)
}
