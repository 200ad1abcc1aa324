// Package ledger is the transaction engine: it reconciles edited line items
// against persisted ones, enforces the per-currency balance invariant, and
// orchestrates atomic persistence of a transaction's elements.
package ledger

import (
	"fmt"
	"slices"
	"sort"

	"github.com/tally-dev/tally/internal/model"
)

// Transaction is the in-memory aggregate: the header row plus its elements.
// Between a merge and the next save it also tracks which batch element each
// proposed tax child attaches to; the link is resolved to a persisted parent
// id only at save time.
type Transaction struct {
	model.Transaction
	Elements []*model.Element

	batchParents map[*model.Element]*model.Element
}

// New creates an unsaved transaction.
func New(date string, typ model.TransactionType) *Transaction {
	return &Transaction{
		Transaction:  model.Transaction{Date: date, Type: typ},
		batchParents: make(map[*model.Element]*model.Element),
	}
}

// Load rebuilds the aggregate from persisted rows.
func Load(row model.Transaction, elements []model.Element) *Transaction {
	t := &Transaction{
		Transaction:  row,
		batchParents: make(map[*model.Element]*model.Element),
	}
	for i := range elements {
		e := elements[i]
		t.Elements = append(t.Elements, &e)
	}
	return t
}

// Proposed is one line of a merge batch. Child marks the element as a tax
// sub-line of the most recent top-level element in the same batch.
type Proposed struct {
	Element model.Element
	Child   bool
}

// Balanced reports whether, for every currency present, the elements'
// signed amounts sum to exactly zero. The raw debit/credit sign is used,
// independent of tax parent/child structure.
func Balanced(elements []*model.Element) bool {
	sums := make(map[string]int64)
	for _, e := range elements {
		sums[e.Currency] += e.Signed()
	}
	for _, sum := range sums {
		if sum != 0 {
			return false
		}
	}
	return true
}

// Merge reconciles a proposed batch into the element collection. Items
// without an id are appended; items with an id replace the existing element
// in place. A Child item attaches to the most recent top-level item of the
// same batch, so children must immediately follow their parent. Zeroing a
// line signals deletion on the next save; nothing is deleted here.
//
// The committed state is untouched unless every check passes and the
// resulting element set balances, so a failed merge is invisible to the
// caller.
func (t *Transaction) Merge(items []Proposed) error {
	if len(items) == 0 {
		return ErrEmptyMerge
	}
	for _, it := range items {
		if it.Element.TransactionID != 0 && it.Element.TransactionID != t.ID {
			return fmt.Errorf("%w: element %d carries transaction %d",
				ErrForeignTransaction, it.Element.ID, it.Element.TransactionID)
		}
	}
	if items[0].Child {
		return ErrInvalidParentPosition
	}

	next := slices.Clone(t.Elements)
	parents := make(map[*model.Element]*model.Element, len(t.batchParents))
	for c, p := range t.batchParents {
		parents[c] = p
	}

	var lastTop *model.Element
	for _, it := range items {
		e := it.Element
		el := &e
		if el.ID == 0 {
			next = append(next, el)
		} else {
			idx := slices.IndexFunc(next, func(x *model.Element) bool { return x.ID == el.ID })
			if idx < 0 {
				return fmt.Errorf("%w: %d", ErrUnknownElementID, el.ID)
			}
			old := next[idx]
			next[idx] = el
			delete(parents, old)
			for c, p := range parents {
				if p == old {
					parents[c] = el
				}
			}
		}
		if it.Child {
			parents[el] = lastTop
		} else {
			lastTop = el
		}
	}

	if !Balanced(next) {
		return ErrUnbalanced
	}

	t.Elements = next
	t.batchParents = parents
	return nil
}

// UnitOfWork is the atomic persistence handle Save works against. Save
// never commits or rolls back; the unit of work belongs to the caller.
type UnitOfWork interface {
	InsertTransaction(t *model.Transaction) error
	UpdateTransaction(t *model.Transaction) error
	InsertElement(e *model.Element) error
	UpdateElement(e *model.Element) error
	DeleteElement(id int64) error
	Commit() error
	Rollback() error
}

// Save persists the transaction and its elements within the given unit of
// work: the header row first, then deletions of zeroed elements, then
// surviving parents, then surviving children with their parent references
// resolved. Elements stay in the in-memory list, zeroed markers included,
// until Condense is called after the caller confirms the commit.
//
// A child whose parent was deleted in the same save is orphaned: its parent
// reference becomes 0, and if its amount is also 0 it is deleted too.
func (t *Transaction) Save(uow UnitOfWork) error {
	if !model.ValidDate(t.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, t.Date)
	}
	if !Balanced(t.Elements) {
		return ErrUnbalanced
	}
	if t.batchParents == nil {
		t.batchParents = make(map[*model.Element]*model.Element)
	}

	if t.ID == 0 {
		if err := uow.InsertTransaction(&t.Transaction); err != nil {
			return fmt.Errorf("%w: %w", ErrStorage, err)
		}
	} else {
		if err := uow.UpdateTransaction(&t.Transaction); err != nil {
			return fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}

	var deletes, parents, children []*model.Element
	for _, e := range t.Elements {
		switch {
		case e.Amount == 0 && e.TaxCode == "":
			deletes = append(deletes, e)
		case t.isChild(e):
			children = append(children, e)
		default:
			parents = append(parents, e)
		}
	}

	// Deletes go first. Children of a deleted parent are redirected at the
	// doomed element so the next step sees its cleared id.
	for _, d := range deletes {
		if d.ID == 0 {
			continue
		}
		if err := uow.DeleteElement(d.ID); err != nil {
			return fmt.Errorf("%w: %w", ErrStorage, err)
		}
		for _, c := range children {
			if t.batchParents[c] == nil && c.ParentID == d.ID {
				t.batchParents[c] = d
			}
		}
		d.ID = 0
	}

	for _, p := range parents {
		p.TransactionID = t.ID
		if err := t.saveElement(uow, p); err != nil {
			return err
		}
	}

	for _, c := range children {
		c.TransactionID = t.ID
		if bp := t.batchParents[c]; bp != nil {
			c.ParentID = bp.ID
		}
		if c.ParentID == 0 && c.Amount == 0 {
			if c.ID != 0 {
				if err := uow.DeleteElement(c.ID); err != nil {
					return fmt.Errorf("%w: %w", ErrStorage, err)
				}
				c.ID = 0
			}
			continue
		}
		if err := t.saveElement(uow, c); err != nil {
			return err
		}
	}

	t.batchParents = make(map[*model.Element]*model.Element)
	return nil
}

func (t *Transaction) saveElement(uow UnitOfWork, e *model.Element) error {
	var err error
	if e.ID == 0 {
		err = uow.InsertElement(e)
	} else {
		err = uow.UpdateElement(e)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

func (t *Transaction) isChild(e *model.Element) bool {
	return e.ParentID != 0 || t.batchParents[e] != nil
}

// Condense prunes the in-memory view after a confirmed commit: zeroed
// top-level elements and zeroed childless tax lines drop out, and the rest
// re-sort by id. It performs no I/O and is idempotent. Calling it before
// the enclosing unit of work is known to have committed risks losing track
// of elements that still need retrying on rollback.
func (t *Transaction) Condense() {
	kept := make([]*model.Element, 0, len(t.Elements))
	for _, e := range t.Elements {
		if t.isChild(e) {
			if e.Amount == 0 && e.TaxCode == "" {
				continue
			}
		} else if e.Amount == 0 {
			continue
		}
		kept = append(kept, e)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].ID < kept[j].ID })
	t.Elements = kept
}
