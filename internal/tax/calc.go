package tax

import "github.com/shopspring/decimal"

// CalcInput is the input to Calculate. Amount is in currency subunits.
// Rates is index-addressed; blank, non-numeric, or negative entries are
// treated as 0%.
type CalcInput struct {
	Amount   int64
	UseGross bool
	Rates    []string
}

// CalcResult mirrors the input rate positions: Taxes has the same length as
// the input Rates, with zero at unset indices.
type CalcResult struct {
	Amount int64
	Taxes  []int64
}

var hundred = decimal.NewFromInt(100)

// Calculate computes per-rate tax amounts from a net or gross base.
//
// Net mode: each tax is round(amount*rate/100) and the returned Amount is
// the base plus all taxes. Gross mode: the net base is recovered as
// round(gross/(1+sum(rates)/100)), each tax is computed from that base, and
// the returned Amount is the base.
//
// Rounding is half away from zero, applied to each tax line independently
// rather than to the aggregate: the sum of the returned taxes may differ
// from a combined-rate computation by a few subunits. Downstream reports
// reconcile against the per-line figures, so this must not change.
func Calculate(in CalcInput) CalcResult {
	rates := make([]decimal.Decimal, len(in.Rates))
	for i, r := range in.Rates {
		rates[i] = lenientRate(r)
	}

	base := decimal.NewFromInt(in.Amount)
	if in.UseGross {
		sum := decimal.Zero
		for _, r := range rates {
			sum = sum.Add(r)
		}
		base = base.DivRound(decimal.NewFromInt(1).Add(sum.Div(hundred)), 0)
	}

	taxes := make([]int64, len(rates))
	total := base.IntPart()
	for i, r := range rates {
		if r.IsZero() {
			continue
		}
		tax := base.Mul(r).DivRound(hundred, 0).IntPart()
		taxes[i] = tax
		total += tax
	}

	if in.UseGross {
		return CalcResult{Amount: base.IntPart(), Taxes: taxes}
	}
	return CalcResult{Amount: total, Taxes: taxes}
}

// lenientRate parses a percentage string, treating anything unusable as 0%.
func lenientRate(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
