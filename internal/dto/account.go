package dto

import (
	"strconv"

	"github.com/GlebRadaev/ledger/internal/domain"
)

var AccountRecordHeader = []string{"client", "available", "held", "total", "locked"}

// AccountRecordDTO is one output row. Money columns are rendered with exactly four decimals.
type AccountRecordDTO struct {
	Client    uint16
	Available string
	Held      string
	Total     string
	Locked    bool
}

func NewAccountRecordDTO(b domain.Balance) AccountRecordDTO {
	return AccountRecordDTO{
		Client:    b.Client,
		Available: b.Available.StringFixed(domain.Precision),
		Held:      b.Held.StringFixed(domain.Precision),
		Total:     b.Total.StringFixed(domain.Precision),
		Locked:    b.Locked,
	}
}

func (r AccountRecordDTO) Row() []string {
	return []string{
		strconv.FormatUint(uint64(r.Client), 10),
		r.Available,
		r.Held,
		r.Total,
		strconv.FormatBool(r.Locked),
	}
}
