package store

import (
	"fmt"
	"time"

	"github.com/tally-dev/tally/internal/audit"
)

// AppendAudit appends one audit log row.
func (s *Store) AppendAudit(e audit.Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO audit_log (at, action, detail, transaction_id) VALUES (?, ?, ?, ?)`,
		e.At.Format(time.RFC3339), e.Action, e.Detail, e.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("appending audit entry: %w", err)
	}
	return nil
}

// AuditEntries reads the most recent audit entries, newest first.
func (s *Store) AuditEntries(limit int) ([]audit.Entry, error) {
	rows, err := s.db.Query(
		`SELECT at, action, detail, transaction_id FROM audit_log ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var out []audit.Entry
	for rows.Next() {
		var e audit.Entry
		var at string
		if err := rows.Scan(&at, &e.Action, &e.Detail, &e.TransactionID); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}
		e.At, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("parsing audit timestamp %q: %w", at, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
