package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"blububb/internal/models"
	"blububb/internal/store"
	"blububb/pkg/events"
)

const (
	transactionsCollection = "transactions"
	countersCollection     = "counters"
)

// Publisher publishes domain events to the message broker.
type Publisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// TransactionService handles business logic related to orders.
type TransactionService struct {
	store     store.Store
	publisher Publisher // nil disables event publication
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(st store.Store, publisher Publisher) *TransactionService {
	return &TransactionService{
		store:     st,
		publisher: publisher,
	}
}

// ListTransactions retrieves transactions sorted by date descending,
// optionally filtered by status (case-insensitive). Dates are compared as
// strings, which is correct for the YYYY-MM-DD format the service assigns.
func (s *TransactionService) ListTransactions(status string) ([]models.Record, error) {
	doc, err := s.store.Load(transactionsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	transactions := doc.Records(transactionsCollection)
	filtered := make([]models.Record, 0, len(transactions))
	for _, t := range transactions {
		if status != "" && !strings.EqualFold(t.String("status"), status) {
			continue
		}
		filtered = append(filtered, t)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].String("date") > filtered[j].String("date")
	})
	return filtered, nil
}

// CreateTransaction assigns a sequential display id, today's date and the
// pending status, persists the order and publishes an order.created event.
// The sequence number comes from a counter persisted separately from the
// collection, so ids are never reused after a deletion.
func (s *TransactionService) CreateTransaction(tx models.Record) (models.Record, error) {
	doc, err := s.store.Load(transactionsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	counters, err := s.store.Load(countersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load counters: %w", err)
	}

	transactions := doc.Records(transactionsCollection)

	// Seeded data files may predate the counter document; never fall behind
	// the collection length.
	next := counters.Int(transactionsCollection)
	if len(transactions) > next {
		next = len(transactions)
	}
	next++

	tx = tx.Clone()
	tx["id"] = fmt.Sprintf("BLB%03d", next)
	tx["date"] = today()
	tx["status"] = "pending"

	counters[transactionsCollection] = next
	if err := s.store.Save(countersCollection, counters); err != nil {
		return nil, fmt.Errorf("failed to save counters: %w", err)
	}

	doc.SetRecords(transactionsCollection, append(transactions, tx))
	if err := s.store.Save(transactionsCollection, doc); err != nil {
		return nil, fmt.Errorf("failed to save transactions: %w", err)
	}

	s.publishCreated(tx)
	return tx, nil
}

// UpdateStatus replaces the status of the transaction with the given id.
func (s *TransactionService) UpdateStatus(id, status string) (models.Record, error) {
	doc, err := s.store.Load(transactionsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	transactions := doc.Records(transactionsCollection)
	for _, t := range transactions {
		if t.ID() != id {
			continue
		}
		t["status"] = status
		doc.SetRecords(transactionsCollection, transactions)
		if err := s.store.Save(transactionsCollection, doc); err != nil {
			return nil, fmt.Errorf("failed to save transactions: %w", err)
		}
		return t, nil
	}
	return nil, fmt.Errorf("transaction %s: %w", id, ErrNotFound)
}

// publishCreated emits an order.created event for downstream consumers
// (inventory, notifications). Publish failures are logged, never surfaced:
// the order is already persisted.
func (s *TransactionService) publishCreated(tx models.Record) {
	if s.publisher == nil {
		return
	}

	event := map[string]any{
		"orderID": tx.ID(),
		"status":  tx.String("status"),
		"total":   tx.Float("total"),
		"date":    tx.String("date"),
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event for %s: %v", tx.ID(), err)
		return
	}
	if err := s.publisher.Publish(events.OrderExchange, events.OrderCreatedKey, body); err != nil {
		log.Printf("Warning: failed to publish order created event for %s: %v", tx.ID(), err)
	}
}
