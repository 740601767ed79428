package dto

import (
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

// CreateAccountRequest defines the data needed to add an account to the chart of accounts.
type CreateAccountRequest struct {
	Code         string             `json:"code" binding:"required,max=32"`
	Name         string             `json:"name" binding:"required"`
	AccountType  domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	AllowPosting *bool              `json:"allowPosting"` // defaults to true
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Code          string             `json:"code"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	AllowPosting  bool               `json:"allowPosting"`
	IsActive      bool               `json:"isActive"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy string             `json:"lastUpdatedBy"`
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	PostingOnly bool `form:"postingOnly"`
}

// CreateCostCenterRequest defines the data needed to add a cost center.
type CreateCostCenterRequest struct {
	Code string `json:"code" binding:"required,max=32"`
	Name string `json:"name" binding:"required"`
}

// CostCenterResponse defines the data returned for a cost center.
type CostCenterResponse struct {
	CostCenterID string    `json:"costCenterID"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	CreatedBy    string    `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Code:          acc.Code,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		AllowPosting:  acc.AllowPosting,
		IsActive:      acc.IsActive,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
		LastUpdatedAt: acc.LastUpdatedAt,
		LastUpdatedBy: acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to []AccountResponse
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return out
}

// ToCostCenterResponse converts a domain.CostCenter to CostCenterResponse DTO
func ToCostCenterResponse(cc *domain.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		CostCenterID: cc.CostCenterID,
		Code:         cc.Code,
		Name:         cc.Name,
		IsActive:     cc.IsActive,
		CreatedAt:    cc.CreatedAt,
		CreatedBy:    cc.CreatedBy,
	}
}

// ToListCostCenterResponse converts a slice of domain.CostCenter to []CostCenterResponse
func ToListCostCenterResponse(ccs []domain.CostCenter) []CostCenterResponse {
	out := make([]CostCenterResponse, len(ccs))
	for i := range ccs {
		out[i] = ToCostCenterResponse(&ccs[i])
	}
	return out
}
