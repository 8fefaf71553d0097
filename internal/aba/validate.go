package aba

import (
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/cameronfoundation/aba/internal/model"
)

// Field widths that are truncated rather than rejected.
const (
	userNameWidth    = 26
	accountNameWidth = 32
	referenceWidth   = 18
	remitterWidth    = 16
)

const (
	maxAmount      = 9_999_999_999 // 10 digits
	maxWithholding = 99_999_999    // 8 digits
	maxRecordCount = 999_999       // 6 digits
)

var (
	bsbPattern           = regexp.MustCompile(`^\d{3}-\d{3}$`)
	accountNumberPattern = regexp.MustCompile(`^\d{0,9}$`)
	bankNamePattern      = regexp.MustCompile(`^[A-Z]{3}$`)
	lettersPattern       = regexp.MustCompile(`^[A-Za-z ]*$`)
	userIDPattern        = regexp.MustCompile(`^\d{6}$`)
	descriptionPattern   = regexp.MustCompile(`^[A-Za-z ]{0,12}$`)
	referencePattern     = regexp.MustCompile(`^[A-Za-z0-9 ]*$`)
)

// Check is the outcome of a single field predicate.
type Check struct {
	OK        bool
	Reason    string // why the value was rejected
	Truncated bool   // accepted, but longer than Limit and will be cut
	Limit     int
	Err       error
}

func pass() Check { return Check{OK: true} }

func fail(reason string) Check { return Check{Reason: reason} }

func fits(v string, limit int) Check {
	if utf8.RuneCountInString(v) > limit {
		return Check{OK: true, Truncated: true, Limit: limit}
	}
	return pass()
}

// CheckBSB requires the 000-000 format.
func CheckBSB(v string) Check {
	if !bsbPattern.MatchString(v) {
		return fail("required format is 000-000")
	}
	return pass()
}

func CheckAccountNumber(v string) Check {
	if !accountNumberPattern.MatchString(v) {
		return fail("must be up to 9 digits only")
	}
	return pass()
}

func CheckBankName(v string) Check {
	if !bankNamePattern.MatchString(v) {
		return fail("must be a capital letter abbreviation of length 3")
	}
	return pass()
}

func CheckUserName(v string) Check {
	if !lettersPattern.MatchString(v) {
		return fail("must be letters and spaces only")
	}
	return fits(v, userNameWidth)
}

func CheckDirectEntryUserID(v string) Check {
	if !userIDPattern.MatchString(v) {
		return fail("must be 6 digits long")
	}
	return pass()
}

func CheckDescription(v string) Check {
	if !descriptionPattern.MatchString(v) {
		return fail("must be letters and spaces only and up to 12 characters long")
	}
	return pass()
}

// CheckIndicator accepts N, W, X, Y or a blank (" " or "").
func CheckIndicator(v string) Check {
	switch v {
	case "N", "W", "X", "Y", " ", "":
		return pass()
	}
	return fail("must be one of N, W, X, Y or blank")
}

// CheckAmount requires an unsigned amount in cents of at most 10 digits.
func CheckAmount(cents int64) Check {
	if cents < 0 || cents > maxAmount {
		return fail("must be expressed in cents, as an unsigned integer, no longer than 10 digits")
	}
	return pass()
}

// CheckAccountName accepts any value; it only flags truncation.
func CheckAccountName(v string) Check {
	return fits(v, accountNameWidth)
}

func CheckReference(v string) Check {
	if !referencePattern.MatchString(v) {
		return fail("must be letters, numbers and spaces only")
	}
	return fits(v, referenceWidth)
}

func CheckRemitter(v string) Check {
	if !lettersPattern.MatchString(v) {
		return fail("must be letters and spaces only")
	}
	return fits(v, remitterWidth)
}

// CheckDefaultRemitter applies the remitter rule to the settings-level fallback.
func CheckDefaultRemitter(v string) Check {
	c := CheckRemitter(v)
	if !c.OK {
		c.Reason = "must be letters and spaces only; it is written into detail records without a remitter"
	}
	return c
}

func CheckTransactionCode(v string) Check {
	if _, err := model.LookupTransactionCode(v); err != nil {
		c := fail("must be one of 13, 50, 51, 52, 53, 54, 55, 56, 57")
		c.Err = err
		return c
	}
	return pass()
}

func CheckTaxWithholding(cents int64) Check {
	if cents < 0 || cents > maxWithholding {
		return fail("must be expressed in cents, as an unsigned integer, no longer than 8 digits")
	}
	return pass()
}

type rule struct {
	field string
	value string
	check func() Check
}

func text(field, value string, fn func(string) Check) rule {
	return rule{field: field, value: value, check: func() Check { return fn(value) }}
}

func money(field string, value int64, fn func(int64) Check) rule {
	return rule{field: field, value: strconv.FormatInt(value, 10), check: func() Check { return fn(value) }}
}

// apply runs rules in order and stops at the first failure.
func apply(record RecordKind, index int, rules []rule, w Warner) error {
	for _, r := range rules {
		c := r.check()
		if !c.OK {
			return &ValidationError{
				Record: record,
				Index:  index,
				Field:  r.field,
				Value:  r.value,
				Reason: c.Reason,
				Err:    c.Err,
			}
		}
		if c.Truncated {
			args := []any{"record", string(record), "field", r.field, "value", r.value, "limit", c.Limit}
			if record == RecordDetail {
				args = append(args, "index", index)
			}
			w.Warn("field will be truncated", args...)
		}
	}
	return nil
}

// ValidateSettings checks the descriptive record fields.
func ValidateSettings(s Settings, w Warner) error {
	return apply(RecordDescriptive, 0, []rule{
		text("bsb", s.BSB, CheckBSB),
		text("accountNumber", s.AccountNumber, CheckAccountNumber),
		text("bankName", s.BankName, CheckBankName),
		text("userName", s.UserName, CheckUserName),
		text("directEntryUserId", s.DirectEntryUserID, CheckDirectEntryUserID),
		text("description", s.Description, CheckDescription),
		text("defaultRemitter", s.DefaultRemitter, CheckDefaultRemitter),
	}, w)
}

// ValidateTransaction checks the detail record fields of the transaction at index.
func ValidateTransaction(index int, t model.Transaction, w Warner) error {
	rules := []rule{
		text("bsb", t.BSB, CheckBSB),
		text("accountNumber", t.AccountNumber, CheckAccountNumber),
		text("indicator", t.Indicator, CheckIndicator),
		money("amount", t.Amount, CheckAmount),
		text("accountName", t.AccountName, CheckAccountName),
		text("reference", t.Reference, CheckReference),
	}
	if t.Remitter != nil {
		rules = append(rules, text("remitter", *t.Remitter, CheckRemitter))
	}
	rules = append(rules,
		text("transactionCode", t.TransactionCode, CheckTransactionCode),
		money("taxWithholding", t.TaxWithholding, CheckTaxWithholding),
	)
	return apply(RecordDetail, index, rules, w)
}

// validateRecordCount runs before any totals are accumulated so they cannot overflow.
func validateRecordCount(n int) error {
	if n > maxRecordCount {
		return &ValidationError{
			Record: RecordBatchControl,
			Field:  "recordCount",
			Value:  strconv.Itoa(n),
			Reason: "must be no longer than 6 digits",
		}
	}
	return nil
}

// validateTotals guards the 10-digit total fields of the batch control record.
// The net total never exceeds the larger of the two.
func validateTotals(t Totals) error {
	return apply(RecordBatchControl, 0, []rule{
		money("creditTotal", t.Credit, CheckAmount),
		money("debitTotal", t.Debit, CheckAmount),
	}, NopWarner{})
}
