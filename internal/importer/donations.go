package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cameronfoundation/aba/internal/model"
)

// DonationsParser parses the foundation's donation export. Columns are
// positional and the header row, if any, is skipped.
type DonationsParser struct {
	Code model.TransactionCode
}

const (
	donationsNumFields    = 8
	donationsColCharity   = 0
	donationsColAmount    = 3
	donationsColName      = 4
	donationsColBSB       = 5
	donationsColAccount   = 6
	donationsColReference = 7
)

// Format returns the parser name.
func (p *DonationsParser) Format() string { return "donations" }

// Parse reads a donation export and returns one credit per row.
func (p *DonationsParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = donationsNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading donations CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	first := 0
	if isDonationsHeader(records[0]) {
		first = 1
	}

	code := p.Code
	if code == "" {
		code = model.CodeExternallyInitiatedCredit
	}

	var txns []model.Transaction
	for i, rec := range records[first:] {
		txn, err := parseDonationsRow(rec, code)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+first+1, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// isDonationsHeader reports whether rec is the header row, recognised by
// its amount and bsb column names.
func isDonationsHeader(rec []string) bool {
	return strings.EqualFold(strings.TrimSpace(rec[donationsColAmount]), colAmount) &&
		strings.EqualFold(strings.TrimSpace(rec[donationsColBSB]), colBSB)
}

func parseDonationsRow(rec []string, code model.TransactionCode) (model.Transaction, error) {
	amount, err := parseDollars(rec[donationsColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[donationsColAmount], err)
	}

	name := strings.TrimSpace(rec[donationsColName])
	if name == "" {
		name = strings.TrimSpace(rec[donationsColCharity])
	}

	return model.Transaction{
		AccountName:     name,
		AccountNumber:   strings.TrimSpace(rec[donationsColAccount]),
		Amount:          amount,
		BSB:             strings.TrimSpace(rec[donationsColBSB]),
		TransactionCode: string(code),
		Reference:       strings.TrimSpace(rec[donationsColReference]),
	}, nil
}
