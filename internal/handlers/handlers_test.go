package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/rental_ledger/internal/core/ports/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/SscSPs/rental_ledger/internal/handlers"
	"github.com/SscSPs/rental_ledger/internal/middleware"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "handler-test-secret"
	testIssuer = "rental-ledger"
	basePath   = "/api/v1/workplaces/wp_1"
)

var testTenant = domain.TenantContext{WorkplaceID: "wp_1", UserID: "usr_1"}

type HandlersTestSuite struct {
	suite.Suite
	entries     *MockJournalEntryService
	drafts      *MockDraftService
	accounts    *MockAccountService
	costCenters *MockCostCenterService
	router      *gin.Engine
	token       string
}

func (s *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.entries = new(MockJournalEntryService)
	s.drafts = new(MockDraftService)
	s.accounts = new(MockAccountService)
	s.costCenters = new(MockCostCenterService)

	cfg := &config.Config{JWTSecret: testSecret, JWTIssuer: testIssuer, IsProduction: true}
	container := &portssvc.ServiceContainer{
		Account:      s.accounts,
		CostCenter:   s.costCenters,
		JournalEntry: s.entries,
		Draft:        s.drafts,
	}

	s.router = gin.New()
	s.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	handlers.RegisterRoutes(s.router, cfg, container)

	token, err := utils.GenerateJWT("usr_1", []string{"wp_1"}, testSecret, time.Hour, testIssuer)
	s.Require().NoError(err)
	s.token = token
}

func (s *HandlersTestSuite) TearDownTest() {
	s.entries.AssertExpectations(s.T())
	s.drafts.AssertExpectations(s.T())
	s.accounts.AssertExpectations(s.T())
	s.costCenters.AssertExpectations(s.T())
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		s.Require().NoError(json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func postedEntry() *domain.JournalEntry {
	postedAt := time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC)
	e := domain.NewDraftEntry("wp_1", postedAt)
	_ = e.UpdateLine("L1", domain.SetAccount{AccountID: "acc_cash"})
	_ = e.UpdateLine("L1", domain.SetDebit{Amount: decimal.RequireFromString("100.000")})
	_ = e.UpdateLine("L2", domain.SetAccount{AccountID: "acc_revenue"})
	_ = e.UpdateLine("L2", domain.SetCredit{Amount: decimal.RequireFromString("100.000")})
	e.EntryID = "entry-1"
	e.EntryNumber = "JE-2025-07-AB12CD"
	e.Description = "Rental payment"
	e.Status = domain.StatusPosted
	e.TotalDebit = decimal.RequireFromString("100.000")
	e.TotalCredit = decimal.RequireFromString("100.000")
	e.PostedAt = &postedAt
	e.PostedBy = "usr_1"
	return e
}

func (s *HandlersTestSuite) TestHealth() {
	w := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestWorkplaceNotGranted() {
	w := s.do(http.MethodGet, "/api/v1/workplaces/wp_other/journal-entries/entry-1", nil)
	s.Equal(http.StatusForbidden, w.Code)
}

func (s *HandlersTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, basePath+"/accounts", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *HandlersTestSuite) TestCreateEntry_Success() {
	s.entries.On("CreateEntry", mock.Anything, testTenant, mock.MatchedBy(func(req dto.CreateJournalEntryRequest) bool {
		return req.Description == "Rental payment" && len(req.Lines) == 2 &&
			req.Lines[0].DebitAmount.Equal(decimal.RequireFromString("100"))
	})).Return(postedEntry(), nil).Once()

	w := s.do(http.MethodPost, basePath+"/journal-entries", `{
		"entryDate": "2025-07-15",
		"description": "Rental payment",
		"lines": [
			{"accountID": "acc_cash", "description": "Cash", "debitAmount": "100.000"},
			{"accountID": "acc_revenue", "description": "Revenue", "creditAmount": "100.000"}
		]
	}`)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody[dto.JournalEntryResponse](s.T(), w)
	s.Equal("JE-2025-07-AB12CD", resp.EntryNumber)
	s.Equal(domain.StatusPosted, resp.Status)
	s.True(resp.IsBalanced)
	s.Len(resp.Lines, 2)
}

func (s *HandlersTestSuite) TestCreateEntry_NegativeAmountRejectedByBinding() {
	w := s.do(http.MethodPost, basePath+"/journal-entries", `{
		"description": "Refund",
		"lines": [{"accountID": "acc_cash", "description": "Cash", "debitAmount": "-5"}]
	}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestCreateEntry_AmountPrecisionRejectedByBinding() {
	tests := []struct {
		name   string
		amount string
	}{
		{"fourth decimal", `"0.0005"`},
		{"fourth decimal as number", `0.0004`},
		{"too many integer digits", `"10000000000000000"`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPost, basePath+"/journal-entries", `{
				"description": "Rounding",
				"lines": [
					{"accountID": "acc_fees", "description": "Fee", "debitAmount": ` + tt.amount + `},
					{"accountID": "acc_cash", "description": "Fee", "creditAmount": ` + tt.amount + `}
				]
			}`)
			s.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	s.entries.AssertNotCalled(s.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestCreateEntry_MalformedJSON() {
	w := s.do(http.MethodPost, basePath+"/journal-entries", `{"description":`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestCreateEntry_ValidationFailedReturnsViolations() {
	diff := decimal.RequireFromString("10")
	postErr := &domain.PostError{
		Kind:   domain.PostValidationFailed,
		Status: domain.StatusDraft,
		Violations: []domain.Violation{
			{Kind: domain.ViolationLineIncomplete, LineID: "L2", LineNumber: 2, Fields: []string{domain.FieldDescription}},
			{Kind: domain.ViolationUnbalanced, Difference: &diff},
		},
	}
	s.entries.On("CreateEntry", mock.Anything, testTenant, mock.Anything).Return(nil, postErr).Once()

	w := s.do(http.MethodPost, basePath+"/journal-entries", `{"description":"x","lines":[]}`)

	s.Require().Equal(http.StatusUnprocessableEntity, w.Code)
	body := decodeBody[struct {
		Violations []dto.ViolationResponse `json:"violations"`
	}](s.T(), w)
	s.Require().Len(body.Violations, 2)
	s.Equal(domain.ViolationLineIncomplete, body.Violations[0].Kind)
	s.Equal("L2", body.Violations[0].LineID)
	s.Equal(domain.ViolationUnbalanced, body.Violations[1].Kind)
	s.True(body.Violations[1].Difference.Equal(diff))
}

func (s *HandlersTestSuite) TestCreateEntry_ErrorMapping() {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid state", &domain.PostError{Kind: domain.PostInvalidState, Status: domain.StatusPosted}, http.StatusConflict},
		{"duplicate number", fmt.Errorf("%w: entry number taken", apperrors.ErrDuplicate), http.StatusConflict},
		{"forbidden", apperrors.ErrForbidden, http.StatusForbidden},
		{"bad date", fmt.Errorf("%w: invalid entry date", apperrors.ErrValidation), http.StatusBadRequest},
		{"internal", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.entries.On("CreateEntry", mock.Anything, testTenant, mock.Anything).Return(nil, tt.err).Once()
			w := s.do(http.MethodPost, basePath+"/journal-entries", `{"description":"x"}`)
			s.Equal(tt.want, w.Code)
		})
	}
}

func (s *HandlersTestSuite) TestValidateEntry_ReportsWithoutPosting() {
	result := domain.ValidationResult{
		OK:         false,
		Violations: []domain.Violation{{Kind: domain.ViolationZeroAmount}},
	}
	s.entries.On("ValidateEntry", mock.Anything, testTenant, mock.MatchedBy(func(e *domain.JournalEntry) bool {
		return e.Status == domain.StatusDraft && e.Description == "Empty" && len(e.Lines) == 2
	})).Return(result, nil).Once()

	w := s.do(http.MethodPost, basePath+"/journal-entries/validate", `{"description":"Empty"}`)

	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	resp := decodeBody[dto.ValidationResponse](s.T(), w)
	s.False(resp.OK)
	s.Require().Len(resp.Violations, 1)
	s.Equal(domain.ViolationZeroAmount, resp.Violations[0].Kind)
	s.True(resp.TotalDebit.IsZero())
	s.entries.AssertNotCalled(s.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (s *HandlersTestSuite) TestValidateEntry_BadDate() {
	w := s.do(http.MethodPost, basePath+"/journal-entries/validate", `{"description":"x","entryDate":"15/07/2025"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestGetEntry() {
	s.entries.On("GetEntryByID", mock.Anything, testTenant, "entry-1").Return(postedEntry(), nil).Once()
	s.entries.On("GetEntryByID", mock.Anything, testTenant, "missing").
		Return(nil, fmt.Errorf("journal entry missing: %w", apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodGet, basePath+"/journal-entries/entry-1", nil)
	s.Equal(http.StatusOK, w.Code)
	s.Equal("entry-1", decodeBody[dto.JournalEntryResponse](s.T(), w).EntryID)

	w = s.do(http.MethodGet, basePath+"/journal-entries/missing", nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestListEntries() {
	next := "tok"
	s.entries.On("ListEntries", mock.Anything, testTenant, dto.ListJournalEntriesParams{Limit: 20}).
		Return(&dto.ListJournalEntriesResponse{Entries: []dto.JournalEntryResponse{}, NextToken: &next}, nil).Once()

	w := s.do(http.MethodGet, basePath+"/journal-entries", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("tok", *decodeBody[dto.ListJournalEntriesResponse](s.T(), w).NextToken)
}

func (s *HandlersTestSuite) TestListEntries_LimitOutOfRange() {
	w := s.do(http.MethodGet, basePath+"/journal-entries?limit=500", nil)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestAccounts() {
	created := &domain.Account{AccountID: "acc-1", WorkplaceID: "wp_1", Code: "1000", Name: "Cash", AccountType: domain.Asset, AllowPosting: true, IsActive: true}
	s.accounts.On("CreateAccount", mock.Anything, testTenant, mock.MatchedBy(func(r dto.CreateAccountRequest) bool {
		return r.Code == "1000" && r.AccountType == domain.Asset
	})).Return(created, nil).Once()
	s.accounts.On("ListAccounts", mock.Anything, testTenant, dto.ListAccountsParams{PostingOnly: true}).
		Return([]domain.Account{*created}, nil).Once()

	w := s.do(http.MethodPost, basePath+"/accounts", dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: domain.Asset})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, basePath+"/accounts?postingOnly=true", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Len(decodeBody[[]dto.AccountResponse](s.T(), w), 1)
}

func (s *HandlersTestSuite) TestCreateAccount_InvalidType() {
	w := s.do(http.MethodPost, basePath+"/accounts", `{"code":"1000","name":"Cash","accountType":"CASH"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *HandlersTestSuite) TestCostCenters() {
	cc := &domain.CostCenter{CostCenterID: "cc-1", WorkplaceID: "wp_1", Code: "BR-01", Name: "Branch 1", IsActive: true}
	s.costCenters.On("CreateCostCenter", mock.Anything, testTenant, dto.CreateCostCenterRequest{Code: "BR-01", Name: "Branch 1"}).
		Return(cc, nil).Once()
	s.costCenters.On("ListCostCenters", mock.Anything, testTenant).Return([]domain.CostCenter{*cc}, nil).Once()

	w := s.do(http.MethodPost, basePath+"/cost-centers", `{"code":"BR-01","name":"Branch 1"}`)
	s.Require().Equal(http.StatusCreated, w.Code)

	w = s.do(http.MethodGet, basePath+"/cost-centers", nil)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Equal("BR-01", decodeBody[[]dto.CostCenterResponse](s.T(), w)[0].Code)
}

func TestNewRouter_RateLimitAndCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		JWTSecret:          testSecret,
		JWTIssuer:          testIssuer,
		RateLimit:          "2-M",
		CORSAllowedOrigins: []string{"https://erp.example.com"},
	}
	r, err := handlers.NewRouter(cfg, slog.Default(), &portssvc.ServiceContainer{}, nil)
	require.NoError(t, err)

	preflight := httptest.NewRequest(http.MethodOptions, "/health", nil)
	preflight.Header.Set("Origin", "https://erp.example.com")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, preflight)
	assert.Equal(t, "https://erp.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewRouter_InvalidRateLimit(t *testing.T) {
	cfg := &config.Config{JWTSecret: testSecret, RateLimit: "lots"}
	_, err := handlers.NewRouter(cfg, slog.Default(), &portssvc.ServiceContainer{}, nil)
	assert.Error(t, err)
}
