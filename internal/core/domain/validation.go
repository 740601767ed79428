package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ViolationKind names a validation rule that an entry failed.
type ViolationKind string

const (
	ViolationHeaderIncomplete   ViolationKind = "HEADER_INCOMPLETE"
	ViolationTooFewLines        ViolationKind = "TOO_FEW_LINES"
	ViolationLineIncomplete     ViolationKind = "LINE_INCOMPLETE"
	ViolationLineBothSides      ViolationKind = "LINE_BOTH_SIDES"
	ViolationNegativeAmount     ViolationKind = "NEGATIVE_AMOUNT"
	ViolationAmountPrecision    ViolationKind = "AMOUNT_PRECISION"
	ViolationUnbalanced         ViolationKind = "UNBALANCED"
	ViolationZeroAmount         ViolationKind = "ZERO_AMOUNT"
	ViolationAccountNotPostable ViolationKind = "ACCOUNT_NOT_POSTABLE"
	ViolationCostCenterUnknown  ViolationKind = "COST_CENTER_UNKNOWN"
)

// Fields reported on LINE_INCOMPLETE violations.
const (
	FieldAccount     = "accountID"
	FieldDescription = "description"
	FieldAmount      = "amount"
)

// Violation is one failed rule. Callers format and localize it themselves.
type Violation struct {
	Kind       ViolationKind    `json:"kind"`
	LineID     LineID           `json:"lineID,omitempty"`
	LineNumber int              `json:"lineNumber,omitempty"`
	Fields     []string         `json:"fields,omitempty"`
	Difference *decimal.Decimal `json:"difference,omitempty"`
}

// ValidationResult is the accept/reject decision plus every violation found.
type ValidationResult struct {
	OK         bool        `json:"ok"`
	Violations []Violation `json:"violations"`
}

// Has reports whether a violation of the given kind was found.
func (r ValidationResult) Has(kind ViolationKind) bool {
	for _, v := range r.Violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// Kinds lists the violation kinds in the order they were found.
func (r ValidationResult) Kinds() []ViolationKind {
	kinds := make([]ViolationKind, len(r.Violations))
	for i, v := range r.Violations {
		kinds[i] = v.Kind
	}
	return kinds
}

// ValidationCheck contributes violations that need more than the entry itself,
// such as account directory lookups. Checks run after the built-in rules.
type ValidationCheck func(entry *JournalEntry) []Violation

// Validator applies the posting rules to an entry.
type Validator struct {
	// AllowNetLines permits a line to carry both a debit and a credit amount.
	AllowNetLines bool
}

// NewValidator returns a Validator. Lines with both sides set are rejected
// unless allowNetLines is true.
func NewValidator(allowNetLines bool) Validator {
	return Validator{AllowNetLines: allowNetLines}
}

// Validate runs the rules in fixed order and collects every violation:
// header, line count, incomplete lines, two-sided lines, negative amounts,
// amount precision, balance and finally the zero-amount guard.
func (v Validator) Validate(entry *JournalEntry, totals Totals) ValidationResult {
	return v.ValidateWith(entry, totals)
}

// ValidateWith is Validate plus extra checks appended after the built-in rules.
func (v Validator) ValidateWith(entry *JournalEntry, totals Totals, checks ...ValidationCheck) ValidationResult {
	violations := make([]Violation, 0)

	if strings.TrimSpace(entry.Description) == "" {
		violations = append(violations, Violation{Kind: ViolationHeaderIncomplete, Fields: []string{FieldDescription}})
	}

	if len(entry.Lines) < minLines {
		violations = append(violations, Violation{Kind: ViolationTooFewLines})
	}

	for _, l := range entry.Lines {
		var missing []string
		if strings.TrimSpace(l.AccountID) == "" {
			missing = append(missing, FieldAccount)
		}
		if strings.TrimSpace(l.Description) == "" {
			missing = append(missing, FieldDescription)
		}
		if l.DebitAmount.IsZero() && l.CreditAmount.IsZero() {
			missing = append(missing, FieldAmount)
		}
		if len(missing) > 0 {
			violations = append(violations, lineViolation(ViolationLineIncomplete, l, missing...))
		}
	}

	if !v.AllowNetLines {
		for _, l := range entry.Lines {
			if !l.DebitAmount.IsZero() && !l.CreditAmount.IsZero() {
				violations = append(violations, lineViolation(ViolationLineBothSides, l))
			}
		}
	}

	for _, l := range entry.Lines {
		if l.DebitAmount.IsNegative() || l.CreditAmount.IsNegative() {
			violations = append(violations, lineViolation(ViolationNegativeAmount, l, FieldAmount))
		}
	}

	// Restored entries bypass SetDebit/SetCredit, so the scale is checked here too.
	for _, l := range entry.Lines {
		if !IsStorableAmount(l.DebitAmount) || !IsStorableAmount(l.CreditAmount) {
			violations = append(violations, lineViolation(ViolationAmountPrecision, l, FieldAmount))
		}
	}

	if !totals.Difference.IsZero() {
		diff := totals.Difference
		violations = append(violations, Violation{Kind: ViolationUnbalanced, Difference: &diff})
	}

	if totals.TotalDebit.IsZero() {
		violations = append(violations, Violation{Kind: ViolationZeroAmount})
	}

	for _, check := range checks {
		if check == nil {
			continue
		}
		violations = append(violations, check(entry)...)
	}

	return ValidationResult{OK: len(violations) == 0, Violations: violations}
}

func lineViolation(kind ViolationKind, l JournalEntryLine, fields ...string) Violation {
	return Violation{Kind: kind, LineID: l.LineID, LineNumber: l.LineNumber, Fields: fields}
}
