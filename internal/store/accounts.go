package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tally-dev/tally/internal/model"
)

// InsertAccount inserts an account row with its allocator-assigned id.
func (s *Store) InsertAccount(a *model.Account) error {
	_, err := s.db.Exec(
		`INSERT INTO accounts (id, title, type, reserved) VALUES (?, ?, ?, ?)`,
		a.ID, a.Title, string(a.Type), a.Reserved,
	)
	if err != nil {
		return fmt.Errorf("inserting account %d: %w", a.ID, err)
	}
	return nil
}

// UpdateAccount updates an account row by id.
func (s *Store) UpdateAccount(a *model.Account) error {
	_, err := s.db.Exec(
		`UPDATE accounts SET title = ?, type = ?, reserved = ? WHERE id = ?`,
		a.Title, string(a.Type), a.Reserved, a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating account %d: %w", a.ID, err)
	}
	return nil
}

// Account reads one account. The bool reports whether it exists.
func (s *Store) Account(id int64) (model.Account, bool, error) {
	var a model.Account
	err := s.db.QueryRow(
		`SELECT id, title, type, reserved FROM accounts WHERE id = ?`, id,
	).Scan(&a.ID, &a.Title, &a.Type, &a.Reserved)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, false, nil
	}
	if err != nil {
		return model.Account{}, false, fmt.Errorf("reading account %d: %w", id, err)
	}
	return a, true, nil
}

// Accounts reads the full chart ordered by id.
func (s *Store) Accounts() ([]model.Account, error) {
	rows, err := s.db.Query(`SELECT id, title, type, reserved FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var out []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Title, &a.Type, &a.Reserved); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// MaxAccountID returns the highest id among accounts of the given types,
// or 0 when there are none.
func (s *Store) MaxAccountID(types []model.AccountType) (int64, error) {
	if len(types) == 0 {
		return 0, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(types)), ",")
	args := make([]any, len(types))
	for i, t := range types {
		args[i] = string(t)
	}

	var max int64
	err := s.db.QueryRow(
		`SELECT COALESCE(MAX(id), 0) FROM accounts WHERE type IN (`+placeholders+`)`,
		args...,
	).Scan(&max)
	if err != nil {
		return 0, fmt.Errorf("querying max account id: %w", err)
	}
	return max, nil
}
