// Package audit records a trail of ledger actions through the store.
package audit

import "time"

// Entry is one row in the audit log. TransactionID is 0 for actions not
// tied to a transaction.
type Entry struct {
	At            time.Time
	Action        string
	Detail        string
	TransactionID int64
}

// Appender is the slice of the store the logger needs.
type Appender interface {
	AppendAudit(e Entry) error
}

// Logger stamps and appends audit entries.
type Logger struct {
	st Appender
}

// NewLogger creates a Logger over a store.
func NewLogger(st Appender) *Logger {
	return &Logger{st: st}
}

// Log appends an entry stamped with the current time.
func (l *Logger) Log(action, detail string, transactionID int64) error {
	return l.st.AppendAudit(Entry{
		At:            time.Now().UTC(),
		Action:        action,
		Detail:        detail,
		TransactionID: transactionID,
	})
}
