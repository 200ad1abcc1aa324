// Package accounts manages the chart of accounts: the reserved default
// chart, creation with prefix-allocated ids, and the reserved-account
// immutability rule.
package accounts

import (
	"errors"
	"fmt"

	"github.com/tally-dev/tally/internal/id"
	"github.com/tally-dev/tally/internal/model"
)

var (
	// ErrUnknownAccount is returned for an id not in the chart.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrReservedAccount is returned when anything but the title of a
	// reserved account would change.
	ErrReservedAccount = errors.New("reserved account allows only title changes")
	// ErrUnknownAccountType is returned for a type outside the fixed
	// enumeration.
	ErrUnknownAccountType = errors.New("unknown account type")
)

// Store is the slice of the persistence collaborator the service needs.
type Store interface {
	InsertAccount(a *model.Account) error
	UpdateAccount(a *model.Account) error
	Account(accountID int64) (model.Account, bool, error)
	Accounts() ([]model.Account, error)
	MaxAccountID(types []model.AccountType) (int64, error)
}

// Service provides chart-of-accounts operations.
type Service struct {
	st Store
}

// NewService creates an accounts Service.
func NewService(st Store) *Service {
	return &Service{st: st}
}

// Create persists a new account with the next id in its type's prefix
// group. The id is assigned exactly once and never reused.
func (s *Service) Create(title string, typ model.AccountType) (model.Account, error) {
	prefix := model.PrefixDigit(typ)
	if prefix == 0 {
		return model.Account{}, fmt.Errorf("%w: %q", ErrUnknownAccountType, typ)
	}
	max, err := s.st.MaxAccountID(model.GroupTypes(typ))
	if err != nil {
		return model.Account{}, err
	}
	next, err := id.Next(max, prefix)
	if err != nil {
		return model.Account{}, err
	}

	a := model.Account{ID: next, Title: title, Type: typ}
	if err := s.st.InsertAccount(&a); err != nil {
		return model.Account{}, err
	}
	return a, nil
}

// Rename changes an account's title. Allowed for reserved accounts too.
func (s *Service) Rename(accountID int64, title string) error {
	a, ok, err := s.st.Account(accountID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAccount, accountID)
	}
	a.Title = title
	return s.st.UpdateAccount(&a)
}

// Update replaces an account's title and type. Reserved accounts reject
// everything except a title change.
func (s *Service) Update(a model.Account) error {
	existing, ok, err := s.st.Account(a.ID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAccount, a.ID)
	}
	if existing.Reserved && (a.Type != existing.Type || !a.Reserved) {
		return fmt.Errorf("%w: %d", ErrReservedAccount, a.ID)
	}
	return s.st.UpdateAccount(&a)
}

// All returns the full chart ordered by id.
func (s *Service) All() ([]model.Account, error) {
	return s.st.Accounts()
}

// SeedReserved inserts any reserved accounts missing from the chart.
// Already-present accounts are left untouched, so re-running init never
// clobbers a renamed title.
func (s *Service) SeedReserved() error {
	for _, a := range ReservedChart() {
		_, ok, err := s.st.Account(a.ID)
		if err != nil {
			return err
		}
		if ok {
			continue
		}
		if err := s.st.InsertAccount(&a); err != nil {
			return err
		}
	}
	return nil
}
