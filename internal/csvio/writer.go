package csvio

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/GlebRadaev/ledger/internal/domain"
	"github.com/GlebRadaev/ledger/internal/dto"
)

// WriteBalances writes a header and one row per balance, in the order given.
func WriteBalances(w io.Writer, balances []domain.Balance) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(dto.AccountRecordHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, b := range balances {
		if err := cw.Write(dto.NewAccountRecordDTO(b).Row()); err != nil {
			return fmt.Errorf("failed to write client %d: %w", b.Client, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
