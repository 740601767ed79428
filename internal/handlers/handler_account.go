package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler handles HTTP requests for the chart of accounts and the cost centers.
type accountHandler struct {
	accountService    portssvc.AccountSvcFacade
	costCenterService portssvc.CostCenterSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade, cs portssvc.CostCenterSvcFacade) *accountHandler {
	return &accountHandler{
		accountService:    as,
		costCenterService: cs,
	}
}

// registerAccountRoutes registers the account and cost-center routes of a workplace.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, costCenterService portssvc.CostCenterSvcFacade) {
	h := newAccountHandler(accountService, costCenterService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
	}

	costCenters := rg.Group("/cost-centers")
	{
		costCenters.POST("", h.createCostCenter)
		costCenters.GET("", h.listCostCenters)
	}
}

// createAccount godoc
// @Summary Create a new account
// @Description Adds an account to the workplace's chart of accounts
// @Tags accounts
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Account code already used"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), tenant, req)
	if err != nil {
		respondWithError(c, err, "Failed to create account")
		return
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID), slog.String("code", account.Code))
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the chart of accounts ordered by code
// @Tags accounts
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   postingOnly query bool false "Only accounts that accept postings"
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), tenant, params)
	if err != nil {
		respondWithError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// createCostCenter godoc
// @Summary Create a cost center
// @Tags cost-centers
// @Accept  json
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Param   costCenter body dto.CreateCostCenterRequest true "Cost center details"
// @Success 201 {object} dto.CostCenterResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Cost center code already used"
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/cost-centers [post]
func (h *accountHandler) createCostCenter(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}

	var req dto.CreateCostCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	cc, err := h.costCenterService.CreateCostCenter(c.Request.Context(), tenant, req)
	if err != nil {
		respondWithError(c, err, "Failed to create cost center")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCostCenterResponse(cc))
}

// listCostCenters godoc
// @Summary List cost centers
// @Tags cost-centers
// @Produce  json
// @Param   workplaceID path string true "Workplace ID"
// @Success 200 {array} dto.CostCenterResponse
// @Security BearerAuth
// @Router /workplaces/{workplaceID}/cost-centers [get]
func (h *accountHandler) listCostCenters(c *gin.Context) {
	tenant, ok := tenantOrAbort(c)
	if !ok {
		return
	}
	ccs, err := h.costCenterService.ListCostCenters(c.Request.Context(), tenant)
	if err != nil {
		respondWithError(c, err, "Failed to list cost centers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCostCenterResponse(ccs))
}
