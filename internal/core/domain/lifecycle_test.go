package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/rental_ledger/internal/apperrors"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/stretchr/testify/suite"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type fixedSuffix struct {
	value string
	err   error
	calls int
}

func (f *fixedSuffix) Suffix() (string, error) {
	f.calls++
	return f.value, f.err
}

type PosterTestSuite struct {
	suite.Suite
	clock    fixedClock
	suffixes *fixedSuffix
	poster   *domain.Poster
	tenant   domain.TenantContext
	entry    *domain.JournalEntry
}

func (s *PosterTestSuite) SetupTest() {
	s.clock = fixedClock{at: time.Date(2025, 7, 9, 10, 30, 0, 0, time.UTC)}
	s.suffixes = &fixedSuffix{value: "A1B2C3"}
	s.poster = domain.NewPoster(s.clock, s.suffixes, domain.NewValidator(false))
	s.tenant = domain.TenantContext{WorkplaceID: "wp_1", UserID: "usr_1"}

	s.entry = newDraft()
	s.entry.Description = "rent"
	a, b := s.entry.Lines[0].LineID, s.entry.Lines[1].LineID
	for _, step := range []struct {
		id domain.LineID
		u  domain.LineUpdate
	}{
		{a, domain.SetAccount{AccountID: "acc_rent_expense"}},
		{a, domain.SetDescription{Description: "July rent"}},
		{a, domain.SetDebit{Amount: dec("100.000")}},
		{b, domain.SetAccount{AccountID: "acc_cash"}},
		{b, domain.SetDescription{Description: "July rent"}},
		{b, domain.SetCredit{Amount: dec("100.000")}},
	} {
		s.Require().NoError(s.entry.UpdateLine(step.id, step.u))
	}
}

func TestPosterTestSuite(t *testing.T) {
	suite.Run(t, new(PosterTestSuite))
}

func (s *PosterTestSuite) TestPostBalancedEntry() {
	posted, err := s.poster.Post(s.entry, s.tenant)

	s.Require().NoError(err)
	s.Equal(domain.StatusPosted, posted.Status)
	s.True(dec("100").Equal(posted.TotalDebit))
	s.True(dec("100").Equal(posted.TotalCredit))
	s.Equal("JE-2025-07-A1B2C3", posted.EntryNumber)
	s.True(domain.IsValidEntryNumber(posted.EntryNumber))
	s.Require().NotNil(posted.PostedAt)
	s.Equal(s.clock.at, *posted.PostedAt)
	s.Equal("usr_1", posted.PostedBy)
	s.Equal("usr_1", posted.CreatedBy)

	// The draft is only replaced once persistence confirms.
	s.Equal(domain.StatusDraft, s.entry.Status)
	s.Empty(s.entry.EntryNumber)
}

func (s *PosterTestSuite) TestPostUnbalancedLeavesDraft() {
	s.Require().NoError(s.entry.UpdateLine(s.entry.Lines[1].LineID, domain.SetCredit{Amount: dec("90.000")}))

	posted, err := s.poster.Post(s.entry, s.tenant)

	s.Nil(posted)
	var postErr *domain.PostError
	s.Require().True(errors.As(err, &postErr))
	s.Equal(domain.PostValidationFailed, postErr.Kind)
	s.Require().Len(postErr.Violations, 1)
	s.Equal(domain.ViolationUnbalanced, postErr.Violations[0].Kind)
	s.True(dec("10").Equal(*postErr.Violations[0].Difference))
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(domain.StatusDraft, s.entry.Status)
	s.Zero(s.suffixes.calls)
}

func (s *PosterTestSuite) TestPostAfterRefusedRemoval() {
	blank := domain.NewDraftEntry("wp_1", s.clock.at)
	blank.Description = "rent"
	first := blank.Lines[0].LineID
	s.Require().NoError(blank.UpdateLine(first, domain.SetAccount{AccountID: "acc_cash"}))
	s.Require().NoError(blank.UpdateLine(first, domain.SetDescription{Description: "rent"}))
	s.Require().NoError(blank.UpdateLine(first, domain.SetDebit{Amount: dec("100")}))

	removed, err := blank.RemoveLine(blank.Lines[1].LineID)
	s.Require().NoError(err)
	s.False(removed)

	_, err = s.poster.Post(blank, s.tenant)

	var postErr *domain.PostError
	s.Require().ErrorAs(err, &postErr)
	s.Equal(domain.ViolationLineIncomplete, postErr.Violations[0].Kind)
	s.Equal(blank.Lines[1].LineID, postErr.Violations[0].LineID)
}

func (s *PosterTestSuite) TestPostTwiceIsInvalidState() {
	posted, err := s.poster.Post(s.entry, s.tenant)
	s.Require().NoError(err)
	number, debit, credit := posted.EntryNumber, posted.TotalDebit, posted.TotalCredit

	s.suffixes.value = "ZZZZZZ"
	again, err := s.poster.Post(posted, s.tenant)

	s.Nil(again)
	var postErr *domain.PostError
	s.Require().ErrorAs(err, &postErr)
	s.Equal(domain.PostInvalidState, postErr.Kind)
	s.Equal(domain.StatusPosted, postErr.Status)
	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.Equal(number, posted.EntryNumber)
	s.True(debit.Equal(posted.TotalDebit))
	s.True(credit.Equal(posted.TotalCredit))
}

func (s *PosterTestSuite) TestPostKeepsExistingEntryNumber() {
	s.entry.EntryNumber = "JE-2024-12-KEEP01"

	posted, err := s.poster.Post(s.entry, s.tenant)

	s.Require().NoError(err)
	s.Equal("JE-2024-12-KEEP01", posted.EntryNumber)
	s.Zero(s.suffixes.calls)
}

func (s *PosterTestSuite) TestPostSuffixFailure() {
	s.suffixes.err = errors.New("entropy exhausted")

	posted, err := s.poster.Post(s.entry, s.tenant)

	s.Nil(posted)
	s.ErrorContains(err, "entropy exhausted")
	s.Equal(domain.StatusDraft, s.entry.Status)
}

func (s *PosterTestSuite) TestPostRunsExtraChecks() {
	check := func(*domain.JournalEntry) []domain.Violation {
		return []domain.Violation{{Kind: domain.ViolationAccountNotPostable, LineNumber: 1}}
	}

	_, err := s.poster.Post(s.entry, s.tenant, check)

	var postErr *domain.PostError
	s.Require().ErrorAs(err, &postErr)
	s.Equal(domain.ViolationAccountNotPostable, postErr.Violations[0].Kind)
	s.Contains(postErr.Error(), "ACCOUNT_NOT_POSTABLE")
}

func (s *PosterTestSuite) TestPostRejectsSubUnitAmounts() {
	// 0.0004 on both sides balances in memory but stores as zero.
	s.entry.Lines[0].DebitAmount = dec("0.0004")
	s.entry.Lines[1].CreditAmount = dec("0.0004")

	posted, err := s.poster.Post(s.entry, s.tenant)

	s.Nil(posted)
	var postErr *domain.PostError
	s.Require().ErrorAs(err, &postErr)
	s.Equal(domain.PostValidationFailed, postErr.Kind)
	s.Equal([]domain.ViolationKind{domain.ViolationAmountPrecision, domain.ViolationAmountPrecision},
		domain.ValidationResult{Violations: postErr.Violations}.Kinds())
	s.Zero(s.suffixes.calls)
}
