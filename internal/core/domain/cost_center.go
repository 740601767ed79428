package domain

// CostCenter is an optional analytic dimension attached to journal lines
// (a branch, a vehicle fleet, a department).
type CostCenter struct {
	CostCenterID string `json:"costCenterID"`
	WorkplaceID  string `json:"workplaceID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
