package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/barber-console/internal/audit"
	"github.com/BruksfildServices01/barber-console/internal/domain/ledger"
	"github.com/BruksfildServices01/barber-console/internal/models"
)

// TransactionStore owns the in-memory sales list, newest first.
type TransactionStore struct {
	repo  ledger.Repository
	audit *audit.Logger

	mu    sync.RWMutex
	items []models.Transaction
}

func NewTransactionStore(repo ledger.Repository, auditLog *audit.Logger) *TransactionStore {
	return &TransactionStore{repo: repo, audit: auditLog}
}

func (s *TransactionStore) Load(ctx context.Context) {
	items, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("table", "transactions").Msg("error fetching transactions")
		return
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

func (s *TransactionStore) List() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.items) == 0 {
		return []models.Transaction{}
	}
	return slices.Clone(s.items)
}

func (s *TransactionStore) Add(ctx context.Context, in models.NewTransaction) (*models.Transaction, error) {
	created, err := s.repo.Insert(ctx, in)
	if err != nil {
		log.Error().Err(err).Str("table", "transactions").Msg("error adding transaction")
		return nil, fmt.Errorf("add transaction: %w", err)
	}

	s.mu.Lock()
	s.items = append([]models.Transaction{*created}, s.items...)
	s.mu.Unlock()

	s.audit.Log("transaction_created", "transaction", created.ID, map[string]any{
		"value":         created.Value.StringFixed(2),
		"paymentMethod": created.PaymentMethod,
	})
	return created, nil
}

func (s *TransactionStore) Update(ctx context.Context, tx models.Transaction) (*models.Transaction, error) {
	updated, err := s.repo.Update(ctx, tx.ID, ledger.Patch{
		Date:          &tx.Date,
		ClientName:    &tx.ClientName,
		Service:       &tx.Service,
		PaymentMethod: &tx.PaymentMethod,
		Subtotal:      &tx.Subtotal,
		Discount:      &tx.Discount,
		Value:         &tx.Value,
	})
	if err != nil {
		log.Error().Err(err).Str("table", "transactions").Uint("id", tx.ID).Msg("error updating transaction")
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == updated.ID {
			s.items[i] = *updated
		}
	}
	s.mu.Unlock()

	s.audit.Log("transaction_updated", "transaction", updated.ID, nil)
	return updated, nil
}
