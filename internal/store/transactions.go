package store

import (
	"database/sql"
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// InsertTransaction inserts the transaction row and assigns its id.
func (u *UOW) InsertTransaction(t *model.Transaction) error {
	res, err := u.tx.Exec(
		`INSERT INTO transactions (date, description, type, actor_id) VALUES (?, ?, ?, ?)`,
		t.Date, t.Description, string(t.Type), t.ActorID,
	)
	if err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading transaction id: %w", err)
	}
	t.ID = id
	return nil
}

// UpdateTransaction updates the transaction row by id.
func (u *UOW) UpdateTransaction(t *model.Transaction) error {
	_, err := u.tx.Exec(
		`UPDATE transactions SET date = ?, description = ?, type = ?, actor_id = ? WHERE id = ?`,
		t.Date, t.Description, string(t.Type), t.ActorID, t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating transaction %d: %w", t.ID, err)
	}
	return nil
}

// InsertElement inserts an element row and assigns its id.
func (u *UOW) InsertElement(e *model.Element) error {
	res, err := u.tx.Exec(
		`INSERT INTO elements
		 (transaction_id, account_id, drcr, amount, currency, settlement_id, tax_code, parent_id, gross_amount, use_gross)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.TransactionID, e.AccountID, e.DrCr, e.Amount, e.Currency,
		e.SettlementID, e.TaxCode, e.ParentID, e.GrossAmount, e.UseGross,
	)
	if err != nil {
		return fmt.Errorf("inserting element: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading element id: %w", err)
	}
	e.ID = id
	return nil
}

// UpdateElement updates an element row by id.
func (u *UOW) UpdateElement(e *model.Element) error {
	_, err := u.tx.Exec(
		`UPDATE elements SET transaction_id = ?, account_id = ?, drcr = ?, amount = ?, currency = ?,
		 settlement_id = ?, tax_code = ?, parent_id = ?, gross_amount = ?, use_gross = ?
		 WHERE id = ?`,
		e.TransactionID, e.AccountID, e.DrCr, e.Amount, e.Currency,
		e.SettlementID, e.TaxCode, e.ParentID, e.GrossAmount, e.UseGross, e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating element %d: %w", e.ID, err)
	}
	return nil
}

// DeleteElement deletes an element row by id.
func (u *UOW) DeleteElement(id int64) error {
	if _, err := u.tx.Exec(`DELETE FROM elements WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting element %d: %w", id, err)
	}
	return nil
}

// Transaction reads one transaction row.
func (s *Store) Transaction(id int64) (model.Transaction, error) {
	var t model.Transaction
	err := s.db.QueryRow(
		`SELECT id, date, description, type, actor_id FROM transactions WHERE id = ?`, id,
	).Scan(&t.ID, &t.Date, &t.Description, &t.Type, &t.ActorID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("reading transaction %d: %w", id, err)
	}
	return t, nil
}

// TransactionsByDate reads the transaction rows within [from, to],
// inclusive, ordered by date then id.
func (s *Store) TransactionsByDate(from, to string) ([]model.Transaction, error) {
	rows, err := s.db.Query(
		`SELECT id, date, description, type, actor_id FROM transactions
		 WHERE date >= ? AND date <= ? ORDER BY date, id`, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	var out []model.Transaction
	for rows.Next() {
		var t model.Transaction
		if err := rows.Scan(&t.ID, &t.Date, &t.Description, &t.Type, &t.ActorID); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

const elementColumns = `id, transaction_id, account_id, drcr, amount, currency,
	settlement_id, tax_code, parent_id, gross_amount, use_gross`

// ElementsByTransaction reads a transaction's elements ordered by id.
func (s *Store) ElementsByTransaction(transactionID int64) ([]model.Element, error) {
	return s.queryElements(
		`SELECT `+elementColumns+` FROM elements WHERE transaction_id = ? ORDER BY id`,
		transactionID,
	)
}

// ElementsByAccount reads every element posted to an account, ordered by id.
func (s *Store) ElementsByAccount(accountID int64) ([]model.Element, error) {
	return s.queryElements(
		`SELECT `+elementColumns+` FROM elements WHERE account_id = ? ORDER BY id`,
		accountID,
	)
}

// ElementsBySettlement reads the elements of one settlement group for an
// account, across all transactions, ordered by id.
func (s *Store) ElementsBySettlement(accountID, settlementID int64) ([]model.Element, error) {
	return s.queryElements(
		`SELECT `+elementColumns+` FROM elements
		 WHERE account_id = ? AND settlement_id = ? ORDER BY id`,
		accountID, settlementID,
	)
}

func (s *Store) queryElements(query string, args ...any) ([]model.Element, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying elements: %w", err)
	}
	defer rows.Close()

	var out []model.Element
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanElement(rows *sql.Rows) (model.Element, error) {
	var e model.Element
	err := rows.Scan(
		&e.ID, &e.TransactionID, &e.AccountID, &e.DrCr, &e.Amount, &e.Currency,
		&e.SettlementID, &e.TaxCode, &e.ParentID, &e.GrossAmount, &e.UseGross,
	)
	if err != nil {
		return model.Element{}, fmt.Errorf("scanning element: %w", err)
	}
	return e, nil
}
