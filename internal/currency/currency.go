// Package currency converts between human-typed amount strings and integer
// amounts in currency subunits, without floating-point drift.
package currency

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownCurrency is returned for codes missing from the table.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidAmount is returned for malformed formatted text.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Info describes one supported currency. Scale is 10^Digits: 100 for
// 2-decimal currencies, 1 for zero-decimal currencies like JPY, 10000 for
// 4-decimal currencies like CLF.
type Info struct {
	Code       string
	Digits     int
	Scale      int64
	DecimalSep string
	GroupSep   string
}

// Lookup returns the Info for an ISO-4217 code.
func Lookup(code string) (Info, error) {
	digits, ok := decimalDigits[code]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	scale := int64(1)
	for i := 0; i < digits; i++ {
		scale *= 10
	}
	return Info{
		Code:       code,
		Digits:     digits,
		Scale:      scale,
		DecimalSep: ".",
		GroupSep:   ",",
	}, nil
}

// Format renders an amount in subunits as plain text: digits, one decimal
// separator, single spaces between thousands groups. No symbol or code.
func Format(subunits int64, code string) (string, error) {
	info, err := Lookup(code)
	if err != nil {
		return "", err
	}
	d := decimal.New(subunits, -int32(info.Digits))
	return group(d.StringFixed(int32(info.Digits)), info), nil
}

// FormatAbs is Format with negative values rendered as a bracketed absolute
// value instead of a minus sign.
func FormatAbs(subunits int64, code string) (string, error) {
	if subunits >= 0 {
		return Format(subunits, code)
	}
	s, err := Format(-subunits, code)
	if err != nil {
		return "", err
	}
	return "(" + s + ")", nil
}

// group inserts a space between thousands groups of the integer part.
func group(s string, info Info) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(" ")
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteString(info.DecimalSep)
		b.WriteString(fracPart)
	}
	return b.String()
}

// Parse converts formatted text to an amount in subunits. Empty or
// whitespace-only input parses to zero. Spaces always group; "," and "."
// are accepted as either grouping or decimal separators: when both occur,
// the one occurring last is the decimal separator and must occur exactly
// once; when only one kind occurs, a single occurrence is the decimal
// separator and repeated occurrences are grouping. Grouped runs after the
// first must be exactly three digits. Rounding is half away from zero to
// the nearest subunit.
func Parse(text, code string) (int64, error) {
	info, err := Lookup(code)
	if err != nil {
		return 0, err
	}

	s := strings.TrimSpace(text)
	if s == "" {
		return 0, nil
	}

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != ',' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
		}
	}

	intPart, fracPart, err := splitAmount(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}

	if intPart == "" {
		intPart = "0"
	}
	num := intPart
	if fracPart != "" {
		num += "." + fracPart
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, text)
	}
	if neg {
		d = d.Neg()
	}
	return d.Shift(int32(info.Digits)).Round(0).IntPart(), nil
}

// splitAmount separates a space-free token into integer and fractional
// digit runs, resolving which separator occurrences are grouping and which
// one (if any) is the decimal separator.
func splitAmount(s string) (intPart, fracPart string, err error) {
	dots := strings.Count(s, ".")
	commas := strings.Count(s, ",")

	decIdx := -1
	switch {
	case dots == 0 && commas == 0:
		// digits only
	case dots > 0 && commas > 0:
		last := strings.LastIndexAny(s, ".,")
		if strings.Count(s, string(s[last])) != 1 {
			return "", "", errAmbiguous
		}
		decIdx = last
	case dots == 1:
		decIdx = strings.IndexByte(s, '.')
	case commas == 1:
		decIdx = strings.IndexByte(s, ',')
	default:
		// single separator kind, repeated: all grouping
	}

	if decIdx >= 0 {
		intPart, fracPart = s[:decIdx], s[decIdx+1:]
		if strings.ContainsAny(fracPart, ".,") {
			return "", "", errAmbiguous
		}
	} else {
		intPart = s
	}

	intPart, err = ungroup(intPart)
	if err != nil {
		return "", "", err
	}
	return intPart, fracPart, nil
}

var errAmbiguous = errors.New("ambiguous separators")

// ungroup strips grouping separators after validating group widths: the
// leading group is 1-3 digits, every later group exactly 3.
func ungroup(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	groups := strings.FieldsFunc(s, func(r rune) bool { return r == '.' || r == ',' })
	split := strings.Split(s, string([]byte{sepByte(s)}))
	if !strings.ContainsAny(s, ".,") {
		return s, nil
	}
	// FieldsFunc drops empty runs; Split keeps them, so compare to catch
	// adjacent or leading/trailing separators.
	if len(groups) != len(split) {
		return "", errAmbiguous
	}
	for i, g := range groups {
		if i == 0 {
			if len(g) < 1 || len(g) > 3 {
				return "", errAmbiguous
			}
			continue
		}
		if len(g) != 3 {
			return "", errAmbiguous
		}
	}
	return strings.Join(groups, ""), nil
}

func sepByte(s string) byte {
	if strings.IndexByte(s, '.') >= 0 {
		return '.'
	}
	return ','
}
