// Package tax implements the colon-delimited tax-code mini-language and the
// per-rate tax calculator.
//
// A tax code is `geography:type[;modifiers]:[variant:]rate`. Geography is
// hyphen-delimited (EU-AT, US-CA, empty for universal codes like :zero:0).
// The type field may carry the modifier suffix `;r` for reverse charge. The
// 4-field form inserts a variant tag (reduced, super-reduced, parking)
// before the rate. Outside this package the string is opaque.
package tax

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidTaxRate is returned for rate strings that are not a
// non-negative decimal with at most 3 fractional digits.
var ErrInvalidTaxRate = errors.New("invalid tax rate")

// Code holds the structured fields of a parsed tax code. Missing fields
// resolve to empty strings; Geo and TypeParts always have at least one
// element.
type Code struct {
	Geo       []string
	TypeParts []string
	Variant   string
	Rate      string
	Reverse   bool
}

// Type returns the bare type token, without modifiers.
func (c Code) Type() string {
	return c.TypeParts[0]
}

// ParseCode splits a tax code into its fields. Tax codes are free-form user
// data, so parsing is deliberately tolerant: malformed or partial input
// never fails, it just leaves fields empty.
func ParseCode(s string) Code {
	fields := strings.Split(s, ":")
	c := Code{
		Geo:       strings.Split(fieldAt(fields, 0), "-"),
		TypeParts: strings.Split(fieldAt(fields, 1), ";"),
	}
	c.Reverse = len(c.TypeParts) > 1 && c.TypeParts[1] == "r"
	switch {
	case len(fields) >= 4:
		c.Variant = fields[2]
		c.Rate = fields[3]
	case len(fields) == 3:
		c.Rate = fields[2]
	}
	return c
}

func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// typeNames maps known type tokens to display names. Unknown tokens are
// shown raw.
var typeNames = map[string]string{
	"vat":    "VAT",
	"gst":    "GST",
	"hst":    "HST",
	"pst":    "PST",
	"qst":    "QST",
	"st":     "sales tax",
	"ut":     "use tax",
	"zero":   "zero-rated",
	"exempt": "tax exempt",
}

// Label builds a human-readable label for a tax code. Unknown geography
// segments are silently omitted.
func Label(code string) string {
	c := ParseCode(code)

	var parts []string
	sub := subRegions[c.Geo[0]]
	for i, g := range c.Geo {
		if g == "" {
			continue
		}
		var name string
		if i == 0 {
			name = topRegions[g]
		} else {
			name = sub[g]
		}
		if name != "" {
			parts = append(parts, name)
		}
	}

	if t := c.Type(); t != "" {
		if name, ok := typeNames[t]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, t)
		}
	}
	if c.Reverse {
		parts = append(parts, "reverse charged")
	}
	if c.Variant != "" {
		parts = append(parts, "("+c.Variant+")")
	}
	if c.Rate != "" {
		parts = append(parts, c.Rate+"%")
	}
	return strings.Join(parts, " ")
}

// WithRate returns a well-formed code with the rate field replaced,
// preserving the 3- vs 4-field structure of the input. Inputs with fewer
// than 3 fields are padded to the 3-field form.
func WithRate(code, rate string) string {
	fields := strings.Split(code, ":")
	geo := fieldAt(fields, 0)
	typ := fieldAt(fields, 1)
	if len(fields) >= 4 {
		return geo + ":" + typ + ":" + fields[2] + ":" + rate
	}
	return geo + ":" + typ + ":" + rate
}

// ParseRate validates a percentage string for catalogue or settings input:
// a non-negative decimal with at most 3 fractional digits. The calculator
// itself stays tolerant of junk rates; this is for code paths that build
// tax codes.
func ParseRate(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrInvalidTaxRate
	}
	if d.IsNegative() || d.Exponent() < -3 {
		return decimal.Zero, ErrInvalidTaxRate
	}
	return d, nil
}
