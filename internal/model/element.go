package model

// Debit/credit sign applied to an element's amount when summing.
const (
	Debit  int64 = 1
	Credit int64 = -1
)

// Element is one line of a ledger transaction. Amounts are integer currency
// subunits; DrCr is Debit or Credit. A nonzero ParentID marks the element as
// a tax sub-line of another element in the same transaction. SettlementID
// links elements across transactions that pay down one another (an invoice
// and its payments share a settlement id).
type Element struct {
	ID            int64
	TransactionID int64
	AccountID     int64
	DrCr          int64
	Amount        int64
	Currency      string
	SettlementID  int64
	TaxCode       string
	ParentID      int64
	GrossAmount   int64
	UseGross      bool
}

// Signed returns the element's amount with its debit/credit sign applied.
func (e Element) Signed() int64 {
	return e.Amount * e.DrCr
}

// IsChild reports whether the element is a tax sub-line of another element.
func (e Element) IsChild() bool {
	return e.ParentID != 0
}
