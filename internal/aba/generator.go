// Package aba builds Australian Bankers' Association direct-entry files:
// one descriptive record, one detail record per transaction and a batch
// control record, each exactly RecordLength characters wide.
package aba

import (
	"strings"
	"time"

	"github.com/cameronfoundation/aba/internal/model"
)

// Settings describe the originating account and appear in the descriptive
// record and as the trace account of every detail record.
type Settings struct {
	AccountNumber        string
	BankName             string // e.g. "CBA"
	BSB                  string
	Description          string
	DirectEntryUserID    string
	IncludeAccountNumber bool // write BSB and account number into the descriptive record
	DefaultRemitter      string
	UserName             string
	ProcessingDate       time.Time // zero = the day Generate runs
}

// Generator turns transactions into an ABA file. It is safe for concurrent use.
type Generator struct {
	settings Settings
	warn     Warner
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithWarner sets the receiver of truncation warnings. The default discards them.
func WithWarner(w Warner) Option {
	return func(g *Generator) {
		if w != nil {
			g.warn = w
		}
	}
}

// WithClock overrides the clock used when Settings.ProcessingDate is zero.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// New creates a Generator for the given settings.
func New(s Settings, opts ...Option) *Generator {
	g := &Generator{settings: s, warn: NopWarner{}, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Settings returns the generator's configuration.
func (g *Generator) Settings() Settings {
	return g.settings
}

// Batch is a generated file together with its control totals.
type Batch struct {
	Text   string
	Totals Totals
}

// Generate validates everything and returns the complete file. On the first
// validation error it returns the error and no output.
func (g *Generator) Generate(txns []model.Transaction) (string, error) {
	b, err := g.Build(txns)
	if err != nil {
		return "", err
	}
	return b.Text, nil
}

// Build is Generate that also returns the batch totals.
func (g *Generator) Build(txns []model.Transaction) (*Batch, error) {
	if err := ValidateSettings(g.settings, g.warn); err != nil {
		return nil, err
	}
	if err := validateRecordCount(len(txns)); err != nil {
		return nil, err
	}

	var sb strings.Builder
	sb.Grow((len(txns) + 3) * (RecordLength + 1))
	sb.WriteString(BuildDescriptiveRecord(g.settings, g.processingDate()))

	var totals Totals
	for i, txn := range txns {
		if err := ValidateTransaction(i, txn, g.warn); err != nil {
			return nil, err
		}
		sb.WriteString(BuildDetailRecord(g.settings, txn))

		// Validated above, so the lookup cannot fail.
		code, _ := model.LookupTransactionCode(txn.TransactionCode)
		totals.add(txn.Amount, code)
	}

	if err := validateTotals(totals); err != nil {
		return nil, err
	}
	sb.WriteString(BuildBatchControlRecord(totals))

	return &Batch{Text: sb.String(), Totals: totals}, nil
}

// Validate reports the first failure of the descriptive record and of every
// transaction, instead of stopping at the first invalid record.
func (g *Generator) Validate(txns []model.Transaction) []error {
	var errs []error
	if err := ValidateSettings(g.settings, g.warn); err != nil {
		errs = append(errs, err)
	}
	if err := validateRecordCount(len(txns)); err != nil {
		errs = append(errs, err)
	}

	var totals Totals
	valid := true
	for i, txn := range txns {
		if err := ValidateTransaction(i, txn, g.warn); err != nil {
			errs = append(errs, err)
			valid = false
			continue
		}
		code, _ := model.LookupTransactionCode(txn.TransactionCode)
		totals.add(txn.Amount, code)
	}
	if valid && len(txns) <= maxRecordCount {
		if err := validateTotals(totals); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (g *Generator) processingDate() time.Time {
	if !g.settings.ProcessingDate.IsZero() {
		return g.settings.ProcessingDate
	}
	return g.now()
}
