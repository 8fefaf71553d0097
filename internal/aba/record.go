package aba

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/cameronfoundation/aba/internal/model"
)

// RecordLength is the width of every ABA record, excluding the line terminator.
const RecordLength = 120

const (
	typeDescriptive  = "0"
	typeDetail       = "1"
	typeBatchControl = "7"

	sequenceNumber = "01"
	batchBSB       = "999-999"
	dateLayout     = "020106" // DDMMYY
)

// Totals accumulates the batch control figures, in cents.
type Totals struct {
	Credit int64
	Debit  int64
	Count  int
}

// Net is the absolute difference between credits and debits.
func (t Totals) Net() int64 {
	n := t.Credit - t.Debit
	if n < 0 {
		return -n
	}
	return n
}

func (t *Totals) add(amount int64, code model.TransactionCode) {
	if code.IsDebit() {
		t.Debit += amount
	} else {
		t.Credit += amount
	}
	t.Count++
}

// BuildDescriptiveRecord renders the type 0 header line, newline included.
func BuildDescriptiveRecord(s Settings, date time.Time) string {
	var b strings.Builder
	b.Grow(RecordLength + 1)

	b.WriteString(typeDescriptive)
	if s.IncludeAccountNumber {
		b.WriteString(s.BSB)
		b.WriteString(justify(s.AccountNumber, 9))
		b.WriteString(blanks(1))
	} else {
		b.WriteString(blanks(17))
	}
	b.WriteString(sequenceNumber)
	b.WriteString(s.BankName)
	b.WriteString(blanks(7))
	b.WriteString(fill(s.UserName, userNameWidth))
	b.WriteString(s.DirectEntryUserID)
	b.WriteString(fill(s.Description, 12))
	b.WriteString(date.Format(dateLayout))
	b.WriteString(blanks(40))
	b.WriteString("\n")

	return b.String()
}

// BuildDetailRecord renders the type 1 line for one transaction, newline included.
// The trace BSB/account and default remitter come from s.
func BuildDetailRecord(s Settings, t model.Transaction) string {
	var b strings.Builder
	b.Grow(RecordLength + 1)

	b.WriteString(typeDetail)
	b.WriteString(t.BSB)
	b.WriteString(justify(t.AccountNumber, 9))
	b.WriteString(indicator(t.Indicator))
	b.WriteString(t.TransactionCode)
	b.WriteString(zeros(t.Amount, 10))
	b.WriteString(fill(toASCII(t.AccountName), accountNameWidth))
	b.WriteString(fill(t.Reference, referenceWidth))
	b.WriteString(s.BSB)
	b.WriteString(justify(s.AccountNumber, 9))
	b.WriteString(fill(t.RemitterOr(s.DefaultRemitter), remitterWidth))
	b.WriteString(zeros(t.TaxWithholding, 8))
	b.WriteString("\n")

	return b.String()
}

// BuildBatchControlRecord renders the closing type 7 line. It has no newline.
func BuildBatchControlRecord(t Totals) string {
	var b strings.Builder
	b.Grow(RecordLength)

	b.WriteString(typeBatchControl)
	b.WriteString(batchBSB)
	b.WriteString(blanks(12))
	b.WriteString(zeros(t.Net(), 10))
	b.WriteString(zeros(t.Credit, 10))
	b.WriteString(zeros(t.Debit, 10))
	b.WriteString(blanks(24))
	b.WriteString(zeros(int64(t.Count), 6))
	b.WriteString(blanks(40))

	return b.String()
}

func blanks(n int) string {
	return strings.Repeat(" ", n)
}

// fill truncates s to width characters and left-justifies it with trailing spaces.
func fill(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + blanks(width-n)
	}
	return string([]rune(s)[:width])
}

// justify right-justifies s with leading spaces. Values are validated to fit.
func justify(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return blanks(width-n) + s
	}
	return s
}

func zeros(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

func indicator(v string) string {
	if v == "" {
		return " "
	}
	return v
}

// toASCII strips diacritics and replaces anything outside printable ASCII with '?'.
func toASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r < ' ' || r > '~' {
			return '?'
		}
		return r
	}, folded)
}
