package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTransactionCode(t *testing.T) {
	tc, err := LookupTransactionCode("13")
	require.NoError(t, err)
	assert.Equal(t, CodeExternallyInitiatedDebit, tc)
	assert.True(t, tc.IsDebit())

	tc, err = LookupTransactionCode("53")
	require.NoError(t, err)
	assert.Equal(t, CodePayroll, tc)
	assert.False(t, tc.IsDebit())
}

func TestLookupTransactionCode_Unknown(t *testing.T) {
	for _, code := range []string{"999", "", "1", "5O", "13 "} {
		_, err := LookupTransactionCode(code)
		require.Error(t, err, "code %q", code)

		var unknown *UnknownTransactionCodeError
		require.True(t, errors.As(err, &unknown), "code %q", code)
		assert.Equal(t, code, unknown.Code)
	}
}

func TestTransactionCodes(t *testing.T) {
	codes := TransactionCodes()
	require.Len(t, codes, 9)
	assert.Equal(t, CodeExternallyInitiatedDebit, codes[0])
	assert.Equal(t, CodeDebentureInterest, codes[8])

	debits := 0
	for _, c := range codes {
		got, err := LookupTransactionCode(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
		assert.NotEmpty(t, c.Name(), "code %s has no name", c)
		assert.Len(t, string(c), 2)
		if c.IsDebit() {
			debits++
		}
	}
	assert.Equal(t, 1, debits, "only code 13 is a debit")
}

func TestTransactionCodeName_Unknown(t *testing.T) {
	assert.Empty(t, TransactionCode("99").Name())
}

func TestRemitterOr(t *testing.T) {
	txn := Transaction{}
	assert.Equal(t, "Default", txn.RemitterOr("Default"))

	txn.Remitter = StringPtr("Someone")
	assert.Equal(t, "Someone", txn.RemitterOr("Default"))

	txn.Remitter = StringPtr("")
	assert.Equal(t, "", txn.RemitterOr("Default"), "an explicit empty remitter is kept")
}
