package ledger

import "errors"

var (
	// ErrEmptyMerge is returned when a merge is given no elements.
	ErrEmptyMerge = errors.New("merge list is empty")
	// ErrForeignTransaction is returned when a proposed element carries
	// another transaction's id.
	ErrForeignTransaction = errors.New("element belongs to another transaction")
	// ErrInvalidParentPosition is returned when a merge starts with a tax
	// child instead of a top-level element.
	ErrInvalidParentPosition = errors.New("merge cannot start with a tax child")
	// ErrUnknownElementID is returned when a proposed element's id matches
	// no existing element.
	ErrUnknownElementID = errors.New("unknown element id")
	// ErrInvalidDate is returned when a transaction's date is missing or
	// not a YYYY-MM-DD calendar day.
	ErrInvalidDate = errors.New("invalid transaction date")
	// ErrUnbalanced is returned when some currency's debits and credits do
	// not sum to zero.
	ErrUnbalanced = errors.New("transaction does not balance")
	// ErrStorage wraps failures from the persistence collaborator. The
	// enclosing unit of work is always rolled back.
	ErrStorage = errors.New("storage failure")
)
