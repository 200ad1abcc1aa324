package ledger

import (
	"fmt"

	"github.com/tally-dev/tally/internal/model"
)

// Storage is the slice of the persistence collaborator the service needs.
type Storage interface {
	Begin() (UnitOfWork, error)
	Transaction(id int64) (model.Transaction, error)
	ElementsByTransaction(transactionID int64) ([]model.Element, error)
	ElementsBySettlement(accountID, settlementID int64) ([]model.Element, error)
}

// Service saves and loads ledger transactions against a store.
type Service struct {
	st Storage
}

// NewService creates a ledger Service.
func NewService(st Storage) *Service {
	return &Service{st: st}
}

// LoadTransaction reads a transaction and its elements.
func (s *Service) LoadTransaction(id int64) (*Transaction, error) {
	row, err := s.st.Transaction(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	elements, err := s.st.ElementsByTransaction(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return Load(row, elements), nil
}

// SaveTransaction persists t in its own unit of work. On success the commit
// is confirmed, so the in-memory view is condensed before returning. On any
// failure the unit of work is rolled back and the durable store is
// unchanged; ids assigned to rolled-back inserts are the only caller-visible
// artifact.
func (s *Service) SaveTransaction(t *Transaction) error {
	uow, err := s.st.Begin()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := t.Save(uow); err != nil {
		_ = uow.Rollback()
		return err
	}
	if err := uow.Commit(); err != nil {
		_ = uow.Rollback()
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	t.Condense()
	return nil
}

// SettlementBalance sums, per currency, the signed amounts of every element
// in a settlement group for one account, across all transactions. Currencies
// are never mixed into one number.
func (s *Service) SettlementBalance(accountID, settlementID int64) (map[string]int64, error) {
	elements, err := s.st.ElementsBySettlement(accountID, settlementID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	sums := make(map[string]int64)
	for _, e := range elements {
		sums[e.Currency] += e.Signed()
	}
	return sums, nil
}

// Settled reports whether a settlement group nets to zero in every
// currency, i.e. the balance it tracks is fully paid.
func (s *Service) Settled(accountID, settlementID int64) (bool, error) {
	sums, err := s.SettlementBalance(accountID, settlementID)
	if err != nil {
		return false, err
	}
	for _, sum := range sums {
		if sum != 0 {
			return false, nil
		}
	}
	return true, nil
}
