package model

import "fmt"

// TransactionCode is the two-character ABA transaction code of a detail record.
type TransactionCode string

const (
	CodeExternallyInitiatedDebit   TransactionCode = "13"
	CodeExternallyInitiatedCredit  TransactionCode = "50"
	CodeGovernmentSecurityInterest TransactionCode = "51"
	CodeFamilyAllowance            TransactionCode = "52"
	CodePayroll                    TransactionCode = "53"
	CodePension                    TransactionCode = "54"
	CodeAllotment                  TransactionCode = "55"
	CodeDividend                   TransactionCode = "56"
	CodeDebentureInterest          TransactionCode = "57"
)

var codeNames = []struct {
	code TransactionCode
	name string
}{
	{CodeExternallyInitiatedDebit, "Externally initiated debit"},
	{CodeExternallyInitiatedCredit, "Externally initiated credit"},
	{CodeGovernmentSecurityInterest, "Australian Government security interest"},
	{CodeFamilyAllowance, "Family allowance"},
	{CodePayroll, "Payroll payment"},
	{CodePension, "Pension payment"},
	{CodeAllotment, "Allotment"},
	{CodeDividend, "Dividend"},
	{CodeDebentureInterest, "Debenture or note interest"},
}

var codesByValue = func() map[string]TransactionCode {
	m := make(map[string]TransactionCode, len(codeNames))
	for _, c := range codeNames {
		m[string(c.code)] = c.code
	}
	return m
}()

// UnknownTransactionCodeError is returned when a code is not one of the ABA transaction codes.
type UnknownTransactionCodeError struct {
	Code string
}

func (e *UnknownTransactionCodeError) Error() string {
	return fmt.Sprintf("%q is not a valid transaction code", e.Code)
}

// LookupTransactionCode resolves a raw code such as "13".
func LookupTransactionCode(code string) (TransactionCode, error) {
	tc, ok := codesByValue[code]
	if !ok {
		return "", &UnknownTransactionCodeError{Code: code}
	}
	return tc, nil
}

// TransactionCodes returns every known code in declaration order.
func TransactionCodes() []TransactionCode {
	codes := make([]TransactionCode, len(codeNames))
	for i, c := range codeNames {
		codes[i] = c.code
	}
	return codes
}

// Name returns the human-readable kind, or "" for an unknown code.
func (c TransactionCode) Name() string {
	for _, n := range codeNames {
		if n.code == c {
			return n.name
		}
	}
	return ""
}

// IsDebit reports whether the code is accumulated into the batch debit total.
// Every other code counts as a credit.
func (c TransactionCode) IsDebit() bool {
	return c == CodeExternallyInitiatedDebit
}
