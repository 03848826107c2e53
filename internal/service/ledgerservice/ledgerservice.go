//go:generate mockgen -source=ledgerservice.go -destination=mocks.go -package=ledgerservice
package ledgerservice

import (
	"fmt"
	"sort"

	"github.com/GlebRadaev/ledger/internal/domain"
	"go.uber.org/zap"
)

type Metrics interface {
	ObserveRecord(kind domain.TransactionType, outcome domain.Outcome)
}

// Service owns every client account seen so far. It is not safe for concurrent use.
type Service struct {
	accounts map[uint16]*domain.Account
	metrics  Metrics
}

func New(metrics Metrics) *Service {
	return &Service{
		accounts: make(map[uint16]*domain.Account),
		metrics:  metrics,
	}
}

// Apply applies one record to the account of its client, creating the account on first reference.
// The only error is a rejected withdrawal, wrapping domain.ErrInsufficientFunds.
func (s *Service) Apply(record domain.Record) error {
	account, ok := s.accounts[record.Client]
	if !ok {
		account = domain.NewAccount()
		s.accounts[record.Client] = account
	}

	outcome, err := apply(account, record)
	s.metrics.ObserveRecord(record.Type, outcome)

	switch outcome {
	case domain.OutcomeIgnored:
		zap.L().Debug("record ignored",
			zap.String("type", record.Type.String()),
			zap.Uint16("client", record.Client),
			zap.Uint32("tx", record.Tx),
		)
	case domain.OutcomeRejected:
		zap.L().Error("record rejected",
			zap.String("type", record.Type.String()),
			zap.Uint16("client", record.Client),
			zap.Uint32("tx", record.Tx),
			zap.Error(err),
		)
		return fmt.Errorf("client %d tx %d: %w", record.Client, record.Tx, err)
	}
	return nil
}

func apply(account *domain.Account, record domain.Record) (domain.Outcome, error) {
	switch record.Type {
	case domain.Deposit:
		if !record.Amount.Valid {
			return domain.OutcomeIgnored, nil
		}
		account.Deposit(record.Amount.Decimal, record.Tx)
		return domain.OutcomeApplied, nil
	case domain.Withdrawal:
		if !record.Amount.Valid {
			return domain.OutcomeIgnored, nil
		}
		if err := account.Withdraw(record.Amount.Decimal, record.Tx); err != nil {
			return domain.OutcomeRejected, err
		}
		return domain.OutcomeApplied, nil
	case domain.Dispute:
		return changed(account.Dispute(record.Tx)), nil
	case domain.Resolve:
		return changed(account.Resolve(record.Tx)), nil
	case domain.Chargeback:
		return changed(account.Chargeback(record.Tx)), nil
	default:
		return domain.OutcomeIgnored, nil
	}
}

func changed(ok bool) domain.Outcome {
	if ok {
		return domain.OutcomeApplied
	}
	return domain.OutcomeIgnored
}

func (s *Service) Account(client uint16) (*domain.Account, bool) {
	account, ok := s.accounts[client]
	return account, ok
}

// Balances returns one balance per client ever seen, ordered by client id.
func (s *Service) Balances() []domain.Balance {
	balances := make([]domain.Balance, 0, len(s.accounts))
	for client, account := range s.accounts {
		balances = append(balances, account.Balance(client))
	}
	sort.Slice(balances, func(i, j int) bool {
		return balances[i].Client < balances[j].Client
	})
	return balances
}
