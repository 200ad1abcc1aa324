package model

import "time"

// TransactionType tags a transaction with its business meaning. Empty means
// a freeform journal entry.
type TransactionType string

const (
	TransactionTypeNone         TransactionType = ""
	TransactionTypeInvoice      TransactionType = "invoice"
	TransactionTypeSale         TransactionType = "sale"
	TransactionTypePurchase     TransactionType = "purchase"
	TransactionTypeBill         TransactionType = "bill"
	TransactionTypeContribution TransactionType = "contribution"
	TransactionTypePayment      TransactionType = "payment"
)

// DateFormat is the sole date representation persisted or compared:
// a calendar day with no time component.
const DateFormat = "2006-01-02"

// ValidDate reports whether s is exactly a YYYY-MM-DD calendar day.
func ValidDate(s string) bool {
	if len(s) != len(DateFormat) {
		return false
	}
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// Transaction is the header row of a ledger transaction. Its id is zero
// until first persistence. Elements are held by the ledger aggregate, not
// here; this struct maps one-to-one onto the transactions table.
type Transaction struct {
	ID          int64
	Date        string // YYYY-MM-DD
	Description string
	Type        TransactionType
	ActorID     int64 // 0 = no counter-party
}
