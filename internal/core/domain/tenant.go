package domain

// TenantContext identifies the workplace (tenant) and the acting user for a
// single operation. It is passed explicitly into every service call.
type TenantContext struct {
	WorkplaceID string `json:"workplaceID"`
	UserID      string `json:"userID"`
}

// IsComplete reports whether both the workplace and user are known.
func (t TenantContext) IsComplete() bool {
	return t.WorkplaceID != "" && t.UserID != ""
}
