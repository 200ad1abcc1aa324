// Package config carries the small typed configuration the engine reads:
// base currency, fiscal-year anchor, enabled tax authorities. The Context
// is built once at startup from the variable store and passed explicitly;
// nothing here is global.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tally-dev/tally/internal/currency"
)

// Variable-store keys.
const (
	KeyBaseCurrency    = "base_currency"
	KeyFiscalYearStart = "fiscal_year_start"
	KeyTaxAuthorities  = "tax_authorities"
)

// MonthDay is a fiscal-year anchor without a year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// String renders the anchor in MM-DD form.
func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", md.Month, md.Day)
}

// ParseMonthDay parses an MM-DD anchor.
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse("01-02", s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("parsing fiscal-year anchor %q: %w", s, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

// Context is the read-only configuration threaded through the application.
type Context struct {
	BaseCurrency    string
	FiscalYearStart MonthDay
	TaxAuthorities  []string
}

// Variables is the read side of the variable store.
type Variables interface {
	Get(key string) (string, bool)
}

// FromVariables builds a Context from the variable store, falling back to
// defaults for unset keys.
func FromVariables(vars Variables) (*Context, error) {
	ctx := &Context{
		BaseCurrency:    "USD",
		FiscalYearStart: MonthDay{Month: time.January, Day: 1},
	}

	if v, ok := vars.Get(KeyBaseCurrency); ok {
		if _, err := currency.Lookup(v); err != nil {
			return nil, fmt.Errorf("base currency: %w", err)
		}
		ctx.BaseCurrency = v
	}
	if v, ok := vars.Get(KeyFiscalYearStart); ok {
		md, err := ParseMonthDay(v)
		if err != nil {
			return nil, err
		}
		ctx.FiscalYearStart = md
	}
	if v, ok := vars.Get(KeyTaxAuthorities); ok && v != "" {
		ctx.TaxAuthorities = strings.Split(v, ",")
	}
	return ctx, nil
}

// FiscalYearFor returns the first day of the fiscal year containing the
// given calendar day, in YYYY-MM-DD form.
func (c *Context) FiscalYearFor(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("parsing date %q: %w", date, err)
	}
	start := time.Date(t.Year(), c.FiscalYearStart.Month, c.FiscalYearStart.Day, 0, 0, 0, 0, time.UTC)
	if t.Before(start) {
		start = start.AddDate(-1, 0, 0)
	}
	return start.Format("2006-01-02"), nil
}

// File is the tally.yaml seed configuration written by init and used to
// populate the variable store.
type File struct {
	Business        string   `yaml:"business"`
	BaseCurrency    string   `yaml:"base_currency"`
	FiscalYearStart string   `yaml:"fiscal_year_start"` // MM-DD
	TaxAuthorities  []string `yaml:"tax_authorities,omitempty"`
}

// Load reads a tally.yaml file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &f, nil
}

// Save writes a File to a YAML file.
func Save(path string, f *File) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a File with sensible defaults for a new ledger.
func Default(business string) *File {
	return &File{
		Business:        business,
		BaseCurrency:    "USD",
		FiscalYearStart: "01-01",
		TaxAuthorities:  []string{"EU", "US"},
	}
}
