package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a node in a workplace's chart of accounts.
type Account struct {
	AccountID    string      `json:"accountID"`    // Primary Key (e.g., UUID)
	WorkplaceID  string      `json:"workplaceID"`  // FK -> workplaces.workplace_id (NON-NULL)
	Code         string      `json:"code"`         // Chart-of-accounts code, e.g. "1101"
	Name         string      `json:"name"`         // User-defined name
	AccountType  AccountType `json:"accountType"`  // ASSET, LIABILITY, etc.
	AllowPosting bool        `json:"allowPosting"` // false for summary/parent nodes
	IsActive     bool        `json:"isActive"`
	AuditFields
}

// IsPostingEligible reports whether lines in the given workplace may post to this account.
func (a Account) IsPostingEligible(workplaceID string) bool {
	return a.AllowPosting && a.IsActive && a.WorkplaceID == workplaceID
}
