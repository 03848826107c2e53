package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/ledger/internal/domain"
)

var (
	ErrMissingHeader   = errors.New("missing header row")
	ErrMissingColumn   = errors.New("missing required column")
	ErrMalformedRecord = errors.New("malformed record")
)

const (
	colType   = "type"
	colClient = "client"
	colTx     = "tx"
	colAmount = "amount"
)

// Reader decodes transaction records from CSV with a header row. Fields are trimmed and rows may
// omit trailing columns, so dispute-family rows can leave out the amount.
type Reader struct {
	csv     *csv.Reader
	columns map[string]int
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	return &Reader{csv: cr}
}

// Next returns the next record, or io.EOF once the input is exhausted.
func (r *Reader) Next() (domain.Record, error) {
	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return domain.Record{}, err
		}
	}

	fields, err := r.csv.Read()
	if err == io.EOF {
		return domain.Record{}, io.EOF
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	line, _ := r.csv.FieldPos(0)
	record, err := r.decode(fields)
	if err != nil {
		return domain.Record{}, fmt.Errorf("%w on line %d: %w", ErrMalformedRecord, line, err)
	}
	return record, nil
}

func (r *Reader) readHeader() error {
	header, err := r.csv.Read()
	if err == io.EOF {
		return ErrMissingHeader
	}
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range []string{colType, colClient, colTx} {
		if _, ok := columns[name]; !ok {
			return fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}
	r.columns = columns
	return nil
}

func (r *Reader) field(fields []string, name string) string {
	i, ok := r.columns[name]
	if !ok || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func (r *Reader) decode(fields []string) (domain.Record, error) {
	var record domain.Record

	kind, err := domain.ParseTransactionType(r.field(fields, colType))
	if err != nil {
		return record, err
	}
	record.Type = kind

	client, err := strconv.ParseUint(r.field(fields, colClient), 10, 16)
	if err != nil {
		return record, fmt.Errorf("invalid client: %w", err)
	}
	record.Client = uint16(client)

	tx, err := strconv.ParseUint(r.field(fields, colTx), 10, 32)
	if err != nil {
		return record, fmt.Errorf("invalid tx: %w", err)
	}
	record.Tx = uint32(tx)

	if raw := r.field(fields, colAmount); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return record, fmt.Errorf("invalid amount: %w", err)
		}
		record.Amount = decimal.NewNullDecimal(amount.Round(domain.Precision))
	}
	return record, nil
}
