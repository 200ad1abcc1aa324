package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/audit"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/store"
)

// storage adapts *store.Store to the ledger's Storage interface.
type storage struct {
	*store.Store
}

func (s storage) Begin() (ledger.UnitOfWork, error) {
	return s.Store.Begin()
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "tally.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpen_CreatesSchema(t *testing.T) {
	st := openStore(t)
	accounts, err := st.Accounts()
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestAccounts_InsertAndMax(t *testing.T) {
	st := openStore(t)

	require.NoError(t, st.InsertAccount(&model.Account{ID: 19, Title: "Undeposited funds", Type: model.AccountTypeAsset, Reserved: true}))
	require.NoError(t, st.InsertAccount(&model.Account{ID: 100, Title: "Workshop", Type: model.AccountTypeAsset}))
	require.NoError(t, st.InsertAccount(&model.Account{ID: 101, Title: "Van", Type: model.AccountTypeLongTermAsset}))
	require.NoError(t, st.InsertAccount(&model.Account{ID: 200, Title: "Accounts payable", Type: model.AccountTypeLiability, Reserved: true}))

	max, err := st.MaxAccountID(model.GroupTypes(model.AccountTypeAsset))
	require.NoError(t, err)
	assert.Equal(t, int64(101), max, "asset and long-term-asset share one counter")

	max, err = st.MaxAccountID(model.GroupTypes(model.AccountTypeEquity))
	require.NoError(t, err)
	assert.Zero(t, max)

	a, ok, err := st.Account(100)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Workshop", a.Title)

	a.Title = "Workshop and yard"
	require.NoError(t, st.UpdateAccount(&a))
	a, _, err = st.Account(100)
	require.NoError(t, err)
	assert.Equal(t, "Workshop and yard", a.Title)
}

func TestUOW_RollbackLeavesStoreUnchanged(t *testing.T) {
	st := openStore(t)

	uow, err := st.Begin()
	require.NoError(t, err)
	txn := model.Transaction{Date: "2025-05-01"}
	require.NoError(t, uow.InsertTransaction(&txn))
	require.NoError(t, uow.InsertElement(&model.Element{
		TransactionID: txn.ID, AccountID: 10, DrCr: model.Debit, Amount: 100, Currency: "USD",
	}))
	require.NoError(t, uow.Rollback())

	elements, err := st.ElementsByTransaction(txn.ID)
	require.NoError(t, err)
	assert.Empty(t, elements)
}

func TestActors_InsertAndList(t *testing.T) {
	st := openStore(t)

	customer := model.Actor{Name: "Globex", Kind: model.ActorKindCustomer}
	supplier := model.Actor{Name: "Acme Supply", Kind: model.ActorKindSupplier}
	require.NoError(t, st.InsertActor(&customer))
	require.NoError(t, st.InsertActor(&supplier))
	assert.NotZero(t, customer.ID)
	assert.NotEqual(t, customer.ID, supplier.ID)

	actors, err := st.Actors()
	require.NoError(t, err)
	require.Len(t, actors, 2)
	assert.Equal(t, "Acme Supply", actors[0].Name, "ordered by name")

	// An invoice can reference the actor it bills.
	svc := ledger.NewService(storage{st})
	txn := ledger.New("2025-04-01", model.TransactionTypeInvoice)
	txn.ActorID = customer.ID
	require.NoError(t, txn.Merge([]ledger.Proposed{
		{Element: model.Element{AccountID: 12, DrCr: model.Debit, Amount: 500, Currency: "USD"}},
		{Element: model.Element{AccountID: 400, DrCr: model.Credit, Amount: 500, Currency: "USD"}},
	}))
	require.NoError(t, svc.SaveTransaction(txn))

	loaded, err := svc.LoadTransaction(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, customer.ID, loaded.ActorID)
}

func TestVariables_WriteThrough(t *testing.T) {
	st := openStore(t)

	vars, err := st.Variables()
	require.NoError(t, err)
	_, ok := vars.Get("base_currency")
	assert.False(t, ok)

	require.NoError(t, vars.Set("base_currency", "EUR"))
	v, ok := vars.Get("base_currency")
	require.True(t, ok)
	assert.Equal(t, "EUR", v)

	// A fresh cache sees the durable value.
	vars2, err := st.Variables()
	require.NoError(t, err)
	v, ok = vars2.Get("base_currency")
	require.True(t, ok)
	assert.Equal(t, "EUR", v)

	require.NoError(t, vars.Set("base_currency", "GBP"))
	v, _ = vars.Get("base_currency")
	assert.Equal(t, "GBP", v)
}

func TestAudit_AppendAndRead(t *testing.T) {
	st := openStore(t)
	logger := audit.NewLogger(st)

	require.NoError(t, logger.Log("init", "seeded chart", 0))
	require.NoError(t, logger.Log("save", "invoice", 42))

	entries, err := st.AuditEntries(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "save", entries[0].Action, "newest first")
	assert.Equal(t, int64(42), entries[0].TransactionID)
	assert.WithinDuration(t, time.Now().UTC(), entries[0].At, time.Minute)
}

func TestSettlement_InvoicePaidAndReopened(t *testing.T) {
	st := openStore(t)
	svc := ledger.NewService(storage{st})

	const ar = 12 // accounts receivable
	const inv1 = 7

	invoice := ledger.New("2025-05-01", model.TransactionTypeInvoice)
	require.NoError(t, invoice.Merge([]ledger.Proposed{
		{Element: model.Element{AccountID: ar, DrCr: model.Debit, Amount: 1000, Currency: "USD", SettlementID: inv1}},
		{Element: model.Element{AccountID: 400, DrCr: model.Credit, Amount: 1000, Currency: "USD"}},
	}))
	require.NoError(t, svc.SaveTransaction(invoice))

	settled, err := svc.Settled(ar, inv1)
	require.NoError(t, err)
	assert.False(t, settled, "invoice alone is unpaid")

	payment := ledger.New("2025-05-15", model.TransactionTypePayment)
	require.NoError(t, payment.Merge([]ledger.Proposed{
		{Element: model.Element{AccountID: 10, DrCr: model.Debit, Amount: 1000, Currency: "USD"}},
		{Element: model.Element{AccountID: ar, DrCr: model.Credit, Amount: 1000, Currency: "USD", SettlementID: inv1}},
	}))
	require.NoError(t, svc.SaveTransaction(payment))

	settled, err = svc.Settled(ar, inv1)
	require.NoError(t, err)
	assert.True(t, settled, "payment settles the invoice")

	// Zero both payment legs and resave: the invoice reopens.
	require.NoError(t, payment.Merge([]ledger.Proposed{
		{Element: model.Element{ID: payment.Elements[0].ID, AccountID: 10, DrCr: model.Debit, Amount: 0, Currency: "USD"}},
		{Element: model.Element{ID: payment.Elements[1].ID, AccountID: ar, DrCr: model.Credit, Amount: 0, Currency: "USD", SettlementID: inv1}},
	}))
	require.NoError(t, svc.SaveTransaction(payment))

	settled, err = svc.Settled(ar, inv1)
	require.NoError(t, err)
	assert.False(t, settled, "zeroed payment reopens the invoice")

	sums, err := svc.SettlementBalance(ar, inv1)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"USD": 1000}, sums)
}

func TestLedger_SaveAndReloadRoundTrip(t *testing.T) {
	st := openStore(t)
	svc := ledger.NewService(storage{st})

	txn := ledger.New("2025-06-01", model.TransactionTypeSale)
	txn.Description = "June sale"
	require.NoError(t, txn.Merge([]ledger.Proposed{
		{Element: model.Element{AccountID: 10, DrCr: model.Debit, Amount: 12000, Currency: "USD"}},
		{Element: model.Element{AccountID: 400, DrCr: model.Credit, Amount: 10000, Currency: "USD"}},
		{Element: model.Element{AccountID: 20, DrCr: model.Credit, Amount: 2000, Currency: "USD", TaxCode: "EU-AT:vat:20"}, Child: true},
	}))
	require.NoError(t, svc.SaveTransaction(txn))

	loaded, err := svc.LoadTransaction(txn.ID)
	require.NoError(t, err)
	assert.Equal(t, "June sale", loaded.Description)
	require.Len(t, loaded.Elements, 3)

	assert.True(t, ledger.Balanced(loaded.Elements))
	child := loaded.Elements[2]
	assert.Equal(t, loaded.Elements[1].ID, child.ParentID)
	assert.Equal(t, "EU-AT:vat:20", child.TaxCode)
}

func TestTransactionsByDate(t *testing.T) {
	st := openStore(t)
	svc := ledger.NewService(storage{st})

	for _, date := range []string{"2025-01-15", "2025-02-15", "2025-03-15"} {
		txn := ledger.New(date, model.TransactionTypeNone)
		require.NoError(t, txn.Merge([]ledger.Proposed{
			{Element: model.Element{AccountID: 10, DrCr: model.Debit, Amount: 100, Currency: "USD"}},
			{Element: model.Element{AccountID: 400, DrCr: model.Credit, Amount: 100, Currency: "USD"}},
		}))
		require.NoError(t, svc.SaveTransaction(txn))
	}

	txns, err := st.TransactionsByDate("2025-01-01", "2025-02-28")
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "2025-01-15", txns[0].Date)
	assert.Equal(t, "2025-02-15", txns[1].Date)
}
