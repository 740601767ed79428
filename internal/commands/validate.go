package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/core/services"
	"github.com/SscSPs/rental_ledger/internal/dto"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrEntryInvalid is returned when the checked entry has violations.
var ErrEntryInvalid = errors.New("journal entry is invalid")

const offlineWorkplace = "offline"

func newValidateCommand() *cobra.Command {
	var file string
	var allowNetLines bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a journal entry file against the ledger rules without a database",
		Long: `Reads a journal entry in YAML (or JSON) and runs the built-in ledger rules.
Account and cost-center lookups need the database and are skipped.

Example file:

  entryDate: 2025-07-15
  description: Rental payment
  lines:
    - accountID: acc_cash
      description: Cash received
      debitAmount: "100.000"
    - accountID: acc_revenue
      description: Rental revenue
      creditAmount: "100.000"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening %s: %w", file, err)
				}
				defer f.Close()
				in = f
			}
			return runValidate(in, cmd.OutOrStdout(), allowNetLines, asJSON)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", `journal entry file, "-" for stdin (required)`)
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().BoolVar(&allowNetLines, "allow-net-lines", false, "accept lines carrying both a debit and a credit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func runValidate(in io.Reader, out io.Writer, allowNetLines, asJSON bool) error {
	var req dto.CreateJournalEntryRequest
	// YAML is a superset of JSON, so both formats decode here.
	if err := yaml.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("parsing journal entry: %w", err)
	}

	entry, err := services.BuildDraft(offlineWorkplace, req, time.Now().UTC())
	if err != nil {
		return err
	}
	totals := entry.Totals()
	result := domain.NewValidator(allowNetLines).Validate(entry, totals)

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(dto.ToValidationResponse(result, totals)); err != nil {
			return err
		}
	} else {
		printValidation(out, result, totals)
	}

	if !result.OK {
		return ErrEntryInvalid
	}
	return nil
}

func printValidation(out io.Writer, result domain.ValidationResult, totals domain.Totals) {
	fmt.Fprintf(out, "Total debit:  %s\n", totals.TotalDebit.StringFixed(domain.AmountScale))
	fmt.Fprintf(out, "Total credit: %s\n", totals.TotalCredit.StringFixed(domain.AmountScale))
	fmt.Fprintf(out, "Difference:   %s\n", totals.Difference.StringFixed(domain.AmountScale))

	if result.OK {
		fmt.Fprintln(out, "OK")
		return
	}
	fmt.Fprintf(out, "%d violation(s):\n", len(result.Violations))
	for _, v := range result.Violations {
		line := "  " + string(v.Kind)
		if v.LineNumber > 0 {
			line += fmt.Sprintf(" line %d", v.LineNumber)
		}
		if len(v.Fields) > 0 {
			line += fmt.Sprintf(" %v", v.Fields)
		}
		if v.Difference != nil {
			line += " difference " + v.Difference.String()
		}
		fmt.Fprintln(out, line)
	}
}
