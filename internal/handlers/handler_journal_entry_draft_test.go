package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const draftsPath = basePath + "/journal-entries/drafts"

func newDraft() *domain.Draft {
	return &domain.Draft{
		DraftID: "draft-1",
		Entry:   domain.NewDraftEntry("wp_1", time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)),
	}
}

func (s *HandlersTestSuite) TestCreateDraft_EmptyBody() {
	s.drafts.On("CreateDraft", mock.Anything, testTenant, dto.CreateDraftRequest{}).Return(newDraft(), nil).Once()

	w := s.do(http.MethodPost, draftsPath, nil)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody[dto.DraftResponse](s.T(), w)
	s.Equal("draft-1", resp.DraftID)
	s.Equal(domain.StatusDraft, resp.Status)
	s.Len(resp.Lines, 2)
	s.False(resp.IsBalanced)
}

func (s *HandlersTestSuite) TestGetDraft_NotFound() {
	s.drafts.On("GetDraft", mock.Anything, testTenant, "gone").
		Return(nil, fmt.Errorf("draft gone: %w", apperrors.ErrNotFound)).Once()

	w := s.do(http.MethodGet, draftsPath+"/gone", nil)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestUpdateDraftHeader() {
	desc := "Damage fee"
	s.drafts.On("UpdateDraftHeader", mock.Anything, testTenant, "draft-1", mock.MatchedBy(func(r dto.UpdateDraftHeaderRequest) bool {
		return r.Description != nil && *r.Description == desc && r.EntryDate == nil
	})).Return(newDraft(), nil).Once()

	w := s.do(http.MethodPatch, draftsPath+"/draft-1", `{"description":"Damage fee"}`)

	s.Equal(http.StatusOK, w.Code)
}

func (s *HandlersTestSuite) TestAddDraftLine() {
	draft := newDraft()
	lineID, err := draft.Entry.AddLine()
	s.Require().NoError(err)
	s.drafts.On("AddDraftLine", mock.Anything, testTenant, "draft-1", dto.JournalEntryLineRequest{}).
		Return(draft, lineID, nil).Once()

	w := s.do(http.MethodPost, draftsPath+"/draft-1/lines", nil)

	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	resp := decodeBody[dto.AddDraftLineResponse](s.T(), w)
	s.Equal("L3", resp.LineID)
	s.Len(resp.Draft.Lines, 3)
}

func (s *HandlersTestSuite) TestUpdateDraftLine_SetDebit() {
	s.drafts.On("UpdateDraftLine", mock.Anything, testTenant, "draft-1", domain.LineID("L1"), mock.MatchedBy(func(u domain.LineUpdate) bool {
		d, ok := u.(domain.SetDebit)
		return ok && d.Amount.Equal(decimal.RequireFromString("120.5"))
	})).Return(newDraft(), nil).Once()

	w := s.do(http.MethodPatch, draftsPath+"/draft-1/lines/L1", `{"op":"setDebit","value":"120.500"}`)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestUpdateDraftLine_ClearCostCenter() {
	s.drafts.On("UpdateDraftLine", mock.Anything, testTenant, "draft-1", domain.LineID("L2"), domain.SetCostCenter{}).
		Return(newDraft(), nil).Once()

	w := s.do(http.MethodPatch, draftsPath+"/draft-1/lines/L2", `{"op":"setCostCenter","value":null}`)

	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *HandlersTestSuite) TestUpdateDraftLine_BadCommands() {
	tests := []struct {
		name string
		body string
	}{
		{"unknown op", `{"op":"setColor","value":"red"}`},
		{"missing op", `{"value":"1"}`},
		{"bad amount", `{"op":"setCredit","value":"ten"}`},
		{"amount below smallest unit", `{"op":"setDebit","value":"0.0001"}`},
		{"amount too large", `{"op":"setCredit","value":"10000000000000000"}`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := s.do(http.MethodPatch, draftsPath+"/draft-1/lines/L1", tt.body)
			s.Equal(http.StatusBadRequest, w.Code)
		})
	}
}

func (s *HandlersTestSuite) TestUpdateDraftLine_UnknownLine() {
	s.drafts.On("UpdateDraftLine", mock.Anything, testTenant, "draft-1", domain.LineID("L9"), mock.Anything).
		Return(nil, domain.ErrLineNotFound).Once()

	w := s.do(http.MethodPatch, draftsPath+"/draft-1/lines/L9", `{"op":"setDescription","value":"x"}`)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *HandlersTestSuite) TestRemoveDraftLine_RefusedAtTwoLines() {
	s.drafts.On("RemoveDraftLine", mock.Anything, testTenant, "draft-1", domain.LineID("L1")).
		Return(newDraft(), false, nil).Once()

	w := s.do(http.MethodDelete, draftsPath+"/draft-1/lines/L1", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.RemoveDraftLineResponse](s.T(), w)
	s.False(resp.Removed)
	s.Len(resp.Draft.Lines, 2)
}

func (s *HandlersTestSuite) TestValidateDraft() {
	result := domain.ValidationResult{Violations: []domain.Violation{
		{Kind: domain.ViolationHeaderIncomplete, Fields: []string{domain.FieldDescription}},
		{Kind: domain.ViolationZeroAmount},
	}}
	s.drafts.On("ValidateDraft", mock.Anything, testTenant, "draft-1").Return(newDraft(), result, nil).Once()

	w := s.do(http.MethodPost, draftsPath+"/draft-1/validate", nil)

	s.Require().Equal(http.StatusOK, w.Code)
	resp := decodeBody[dto.ValidationResponse](s.T(), w)
	s.False(resp.OK)
	s.Len(resp.Violations, 2)
}

func (s *HandlersTestSuite) TestPostDraft() {
	s.drafts.On("PostDraft", mock.Anything, testTenant, "draft-1").Return(postedEntry(), nil).Once()
	s.drafts.On("PostDraft", mock.Anything, testTenant, "draft-1").
		Return(nil, &domain.PostError{Kind: domain.PostInvalidState, Status: domain.StatusPosted}).Once()

	w := s.do(http.MethodPost, draftsPath+"/draft-1/post", nil)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	s.Equal("JE-2025-07-AB12CD", decodeBody[dto.JournalEntryResponse](s.T(), w).EntryNumber)

	w = s.do(http.MethodPost, draftsPath+"/draft-1/post", nil)
	s.Equal(http.StatusConflict, w.Code)
}

func (s *HandlersTestSuite) TestDiscardDraft() {
	s.drafts.On("DiscardDraft", mock.Anything, testTenant, "draft-1").Return(nil).Once()

	w := s.do(http.MethodDelete, draftsPath+"/draft-1", nil)

	s.Equal(http.StatusNoContent, w.Code)
}
