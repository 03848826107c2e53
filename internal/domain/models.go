package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the number of fractional digits amounts are kept and rendered with.
const Precision int32 = 4

type TransactionType uint8

const (
	Deposit TransactionType = iota + 1
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

var transactionTypeNames = map[TransactionType]string{
	Deposit:    "deposit",
	Withdrawal: "withdrawal",
	Dispute:    "dispute",
	Resolve:    "resolve",
	Chargeback: "chargeback",
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TransactionType(%d)", uint8(t))
}

// ParseTransactionType matches s against the lowercase type names, ignoring case.
func ParseTransactionType(s string) (TransactionType, error) {
	s = strings.ToLower(s)
	for t, name := range transactionTypeNames {
		if name == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTransactionType, s)
}

// TxStatus is the lifecycle state of a stored transaction entry.
type TxStatus uint8

const (
	StatusDeposited TxStatus = iota + 1
	StatusWithdrawn
	StatusDisputed
	StatusResolved
	StatusChargebacked
)

func (s TxStatus) String() string {
	switch s {
	case StatusDeposited:
		return "deposited"
	case StatusWithdrawn:
		return "withdrawn"
	case StatusDisputed:
		return "disputed"
	case StatusResolved:
		return "resolved"
	case StatusChargebacked:
		return "chargebacked"
	default:
		return fmt.Sprintf("TxStatus(%d)", uint8(s))
	}
}

// Record is one decoded input row. Amount is only meaningful for deposits and withdrawals.
type Record struct {
	Type   TransactionType
	Client uint16
	Tx     uint32
	Amount decimal.NullDecimal
}

type Transaction struct {
	Amount decimal.Decimal
	Status TxStatus
}

// Balance is the externally visible state of one client's account.
type Balance struct {
	Client    uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// Outcome classifies what applying a record did to the ledger.
type Outcome uint8

const (
	OutcomeApplied Outcome = iota + 1
	OutcomeIgnored
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}
