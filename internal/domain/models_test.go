package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		input     string
		expected  TransactionType
		expectErr bool
	}{
		{input: "deposit", expected: Deposit},
		{input: "Withdrawal", expected: Withdrawal},
		{input: "DISPUTE", expected: Dispute},
		{input: "resolve", expected: Resolve},
		{input: "chargeBack", expected: Chargeback},
		{input: "transfer", expectErr: true},
		{input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTransactionType(tt.input)
			if tt.expectErr {
				require.ErrorIs(t, err, ErrUnknownTransactionType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected.String(), got.String())
		})
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "chargeback", Chargeback.String())
	assert.Equal(t, "TransactionType(42)", TransactionType(42).String())
	assert.Equal(t, "disputed", StatusDisputed.String())
	assert.Equal(t, "rejected", OutcomeRejected.String())
}
