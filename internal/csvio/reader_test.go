package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/ledger/internal/domain"
)

func readAll(t *testing.T, input string) ([]domain.Record, error) {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	var records []domain.Record
	for {
		record, err := r.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return records, err
		}
		records = append(records, record)
	}
}

func TestReader_Next(t *testing.T) {
	input := "type, client, tx, amount\n" +
		"deposit, 1, 1, 1.0\n" +
		"  Withdrawal ,2,  5 ,  0.12345 \n" +
		"dispute, 1, 1,\n" +
		"resolve,1,1\n" +
		"\n" +
		"CHARGEBACK, 65535, 4294967295,\n"

	records, err := readAll(t, input)
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, domain.Deposit, records[0].Type)
	assert.Equal(t, uint16(1), records[0].Client)
	assert.Equal(t, uint32(1), records[0].Tx)
	require.True(t, records[0].Amount.Valid)
	assert.Equal(t, "1.0000", records[0].Amount.Decimal.StringFixed(4))

	assert.Equal(t, domain.Withdrawal, records[1].Type)
	assert.Equal(t, uint16(2), records[1].Client)
	assert.Equal(t, uint32(5), records[1].Tx)
	assert.Equal(t, "0.1235", records[1].Amount.Decimal.StringFixed(4))

	assert.Equal(t, domain.Dispute, records[2].Type)
	assert.False(t, records[2].Amount.Valid)

	assert.Equal(t, domain.Resolve, records[3].Type)
	assert.False(t, records[3].Amount.Valid)

	assert.Equal(t, domain.Chargeback, records[4].Type)
	assert.Equal(t, uint16(65535), records[4].Client)
	assert.Equal(t, uint32(4294967295), records[4].Tx)
}

func TestReader_ColumnOrderFromHeader(t *testing.T) {
	records, err := readAll(t, "client,tx,amount,type\n3,9,2.5,deposit\n")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.Deposit, records[0].Type)
	assert.Equal(t, uint16(3), records[0].Client)
	assert.Equal(t, uint32(9), records[0].Tx)
	assert.Equal(t, "2.5000", records[0].Amount.Decimal.StringFixed(4))
}

func TestReader_Errors(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expectedError error
		contains      string
	}{
		{
			name:          "Empty input",
			input:         "",
			expectedError: ErrMissingHeader,
		},
		{
			name:          "Header without tx",
			input:         "type,client,amount\n",
			expectedError: ErrMissingColumn,
		},
		{
			name:          "Unknown type",
			input:         "type,client,tx,amount\ntransfer,1,1,1.0\n",
			expectedError: domain.ErrUnknownTransactionType,
			contains:      "line 2",
		},
		{
			name:          "Client out of range",
			input:         "type,client,tx,amount\ndeposit,65536,1,1.0\n",
			expectedError: ErrMalformedRecord,
			contains:      "invalid client",
		},
		{
			name:          "Negative tx",
			input:         "type,client,tx,amount\ndeposit,1,-1,1.0\n",
			expectedError: ErrMalformedRecord,
			contains:      "invalid tx",
		},
		{
			name:          "Bad amount",
			input:         "type,client,tx,amount\ndeposit,1,1,1.0\ndeposit,1,2,abc\n",
			expectedError: ErrMalformedRecord,
			contains:      "line 3",
		},
		{
			name:          "Missing client field",
			input:         "type,client,tx,amount\ndeposit\n",
			expectedError: ErrMalformedRecord,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readAll(t, tt.input)
			require.ErrorIs(t, err, tt.expectedError)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}
