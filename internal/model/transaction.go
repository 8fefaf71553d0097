package model

// Transaction is one payment to be written as an ABA detail record.
type Transaction struct {
	AccountName     string
	AccountNumber   string // up to 9 digits
	Amount          int64  // cents
	BSB             string // "NNN-NNN"
	Indicator       string // N, W, X, Y or blank
	TransactionCode string
	Reference       string
	Remitter        *string // nil = use the generator's default remitter
	TaxWithholding  int64   // cents
}

// RemitterOr returns the transaction's remitter, or fallback when none was given.
func (t Transaction) RemitterOr(fallback string) string {
	if t.Remitter == nil {
		return fallback
	}
	return *t.Remitter
}

// StringPtr is a convenience for building optional fields such as Remitter.
func StringPtr(s string) *string {
	return &s
}
