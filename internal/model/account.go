package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset               AccountType = "asset"
	AccountTypeLongTermAsset       AccountType = "long-term-asset"
	AccountTypeLiability           AccountType = "liability"
	AccountTypeLongTermLiability   AccountType = "long-term-liability"
	AccountTypeEquity              AccountType = "equity"
	AccountTypeRevenue             AccountType = "revenue"
	AccountTypeExpense             AccountType = "expense"
	AccountTypeInterestExpense     AccountType = "interest-expense"
	AccountTypeTaxExpense          AccountType = "tax-expense"
	AccountTypeDepreciationExpense AccountType = "depreciation-expense"
	AccountTypeGain                AccountType = "gain"
	AccountTypeLoss                AccountType = "loss"
)

var allAccountTypes = []AccountType{
	AccountTypeAsset,
	AccountTypeLongTermAsset,
	AccountTypeLiability,
	AccountTypeLongTermLiability,
	AccountTypeEquity,
	AccountTypeRevenue,
	AccountTypeExpense,
	AccountTypeInterestExpense,
	AccountTypeTaxExpense,
	AccountTypeDepreciationExpense,
	AccountTypeGain,
	AccountTypeLoss,
}

// PrefixDigit returns the leading-digit convention for generated ids of the
// given account type. Types that share a digit share one id counter.
func PrefixDigit(t AccountType) int {
	switch t {
	case AccountTypeAsset, AccountTypeLongTermAsset:
		return 1
	case AccountTypeLiability, AccountTypeLongTermLiability:
		return 2
	case AccountTypeEquity:
		return 3
	case AccountTypeRevenue, AccountTypeGain:
		return 4
	case AccountTypeExpense, AccountTypeInterestExpense,
		AccountTypeTaxExpense, AccountTypeDepreciationExpense, AccountTypeLoss:
		return 5
	}
	return 0
}

// GroupTypes returns every account type sharing the given type's id counter.
func GroupTypes(t AccountType) []AccountType {
	digit := PrefixDigit(t)
	var group []AccountType
	for _, other := range allAccountTypes {
		if PrefixDigit(other) == digit {
			group = append(group, other)
		}
	}
	return group
}

// Account is one row in the chart of accounts. Ids are assigned once, on
// first persistence, and never reused. Reserved accounts ship with the
// default chart and are immutable except for their title.
type Account struct {
	ID       int64
	Title    string
	Type     AccountType
	Reserved bool
}
