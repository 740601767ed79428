package models

// AccountType defines the fundamental accounting type of an account.
type AccountType string

// Account is a row of the accounts table.
type Account struct {
	AccountID    string      `db:"account_id"`
	WorkplaceID  string      `db:"workplace_id"`
	Code         string      `db:"code"`
	Name         string      `db:"name"`
	AccountType  AccountType `db:"account_type"`
	AllowPosting bool        `db:"allow_posting"`
	IsActive     bool        `db:"is_active"`
	AuditFields
}

// CostCenter is a row of the cost_centers table.
type CostCenter struct {
	CostCenterID string `db:"cost_center_id"`
	WorkplaceID  string `db:"workplace_id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
