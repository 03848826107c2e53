package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
)

// InsufficientFundsError reports a withdrawal larger than the available funds.
type InsufficientFundsError struct {
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("failed withdrawal, amount: %s is greater than available funds: %s",
		e.Requested.String(), e.Available.String())
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Account holds one client's funds and the entries of every transaction that moved them.
// Total is always derived as Available + Held.
type Account struct {
	Available    decimal.Decimal
	Held         decimal.Decimal
	Locked       bool
	Transactions map[uint32]Transaction
}

func NewAccount() *Account {
	return &Account{
		Transactions: make(map[uint32]Transaction),
	}
}

func (a *Account) Total() decimal.Decimal {
	return a.Available.Add(a.Held)
}

// Deposit credits amount and records the entry under txID, replacing any entry already there.
func (a *Account) Deposit(amount decimal.Decimal, txID uint32) {
	a.Available = a.Available.Add(amount)
	a.Transactions[txID] = Transaction{Amount: amount, Status: StatusDeposited}
}

// Withdraw debits amount. The account is left untouched when amount exceeds the available funds.
func (a *Account) Withdraw(amount decimal.Decimal, txID uint32) error {
	if amount.GreaterThan(a.Available) {
		return &InsufficientFundsError{Requested: amount, Available: a.Available}
	}
	a.Available = a.Available.Sub(amount)
	a.Transactions[txID] = Transaction{Amount: amount, Status: StatusWithdrawn}
	return nil
}

// Dispute moves the amount of txID from available to held. Only deposited or withdrawn entries
// can be disputed. Available may go negative when the disputed funds were already spent.
// Reports whether the account changed.
func (a *Account) Dispute(txID uint32) bool {
	tx, ok := a.Transactions[txID]
	if !ok || (tx.Status != StatusDeposited && tx.Status != StatusWithdrawn) {
		return false
	}
	a.Available = a.Available.Sub(tx.Amount)
	a.Held = a.Held.Add(tx.Amount)
	tx.Status = StatusDisputed
	a.Transactions[txID] = tx
	return true
}

// Resolve releases the held amount of a disputed txID back to available.
func (a *Account) Resolve(txID uint32) bool {
	tx, ok := a.disputed(txID)
	if !ok {
		return false
	}
	a.Held = a.Held.Sub(tx.Amount)
	a.Available = a.Available.Add(tx.Amount)
	tx.Status = StatusResolved
	a.Transactions[txID] = tx
	return true
}

// Chargeback removes the held amount of a disputed txID and locks the account.
func (a *Account) Chargeback(txID uint32) bool {
	tx, ok := a.disputed(txID)
	if !ok {
		return false
	}
	a.Held = a.Held.Sub(tx.Amount)
	a.Locked = true
	tx.Status = StatusChargebacked
	a.Transactions[txID] = tx
	return true
}

func (a *Account) disputed(txID uint32) (Transaction, bool) {
	tx, ok := a.Transactions[txID]
	if !ok || tx.Status != StatusDisputed {
		return Transaction{}, false
	}
	return tx, true
}

func (a *Account) Balance(client uint16) Balance {
	return Balance{
		Client:    client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total(),
		Locked:    a.Locked,
	}
}
