package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cameronfoundation/aba/internal/model"
)

// StandardParser parses a CSV whose header names the transaction fields.
// Column order is free and unknown columns are ignored.
type StandardParser struct{}

const (
	colAccountName     = "account_name"
	colAccountNumber   = "account_number"
	colAmount          = "amount"
	colBSB             = "bsb"
	colTransactionCode = "transaction_code"
	colIndicator       = "indicator"
	colReference       = "reference"
	colRemitter        = "remitter"
	colTaxWithholding  = "tax_withholding"
)

var standardRequired = []string{colAccountName, colAccountNumber, colAmount, colBSB, colTransactionCode}

// Format returns the parser name.
func (p *StandardParser) Format() string { return "standard" }

// Parse reads a header-named CSV and returns its transactions.
func (p *StandardParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading standard CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing header row")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range standardRequired {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := parseStandardRow(cols, rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseStandardRow(cols map[string]int, rec []string) (model.Transaction, error) {
	get := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	amount, err := parseDollars(get(colAmount))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", get(colAmount), err)
	}

	var withholding int64
	if v := get(colTaxWithholding); v != "" {
		withholding, err = parseDollars(v)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("parsing tax withholding %q: %w", v, err)
		}
	}

	txn := model.Transaction{
		AccountName:     get(colAccountName),
		AccountNumber:   get(colAccountNumber),
		Amount:          amount,
		BSB:             get(colBSB),
		Indicator:       get(colIndicator),
		TransactionCode: get(colTransactionCode),
		Reference:       get(colReference),
		TaxWithholding:  withholding,
	}
	if v := get(colRemitter); v != "" {
		txn.Remitter = model.StringPtr(v)
	}
	return txn, nil
}
