package accounts

import "github.com/tally-dev/tally/internal/model"

// ReservedChart returns the pre-populated accounts every ledger starts
// with. Their ids are fixed forever and follow the same leading-digit
// convention as generated ids; generated ids continue above the highest
// reserved id of each prefix group.
func ReservedChart() []model.Account {
	return []model.Account{
		{ID: 10, Title: "Cash", Type: model.AccountTypeAsset, Reserved: true},
		{ID: 11, Title: "Bank account", Type: model.AccountTypeAsset, Reserved: true},
		{ID: 12, Title: "Accounts receivable", Type: model.AccountTypeAsset, Reserved: true},
		{ID: 14, Title: "Inventory", Type: model.AccountTypeAsset, Reserved: true},
		{ID: 16, Title: "Prepaid expenses", Type: model.AccountTypeAsset, Reserved: true},
		{ID: 19, Title: "Undeposited funds", Type: model.AccountTypeAsset, Reserved: true},

		{ID: 20, Title: "Taxes payable", Type: model.AccountTypeLiability, Reserved: true},
		{ID: 200, Title: "Accounts payable", Type: model.AccountTypeLiability, Reserved: true},

		{ID: 30, Title: "Owner's capital", Type: model.AccountTypeEquity, Reserved: true},
		{ID: 31, Title: "Owner's drawings", Type: model.AccountTypeEquity, Reserved: true},
		{ID: 39, Title: "Retained earnings", Type: model.AccountTypeEquity, Reserved: true},

		{ID: 400, Title: "Sales", Type: model.AccountTypeRevenue, Reserved: true},
		{ID: 401, Title: "Service revenue", Type: model.AccountTypeRevenue, Reserved: true},
		{ID: 402, Title: "Interest income", Type: model.AccountTypeRevenue, Reserved: true},
		{ID: 403, Title: "Other income", Type: model.AccountTypeRevenue, Reserved: true},
		{ID: 404, Title: "Gain on disposal", Type: model.AccountTypeGain, Reserved: true},

		{ID: 500, Title: "Cost of goods sold", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 501, Title: "Advertising", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 502, Title: "Bank charges", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 503, Title: "Depreciation", Type: model.AccountTypeDepreciationExpense, Reserved: true},
		{ID: 504, Title: "Insurance", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 505, Title: "Interest paid", Type: model.AccountTypeInterestExpense, Reserved: true},
		{ID: 506, Title: "Office supplies", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 507, Title: "Professional fees", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 508, Title: "Rent", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 509, Title: "Repairs and maintenance", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 510, Title: "Salaries and wages", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 511, Title: "Taxes paid", Type: model.AccountTypeTaxExpense, Reserved: true},
		{ID: 512, Title: "Travel", Type: model.AccountTypeExpense, Reserved: true},
		{ID: 513, Title: "Utilities", Type: model.AccountTypeExpense, Reserved: true},
	}
}
