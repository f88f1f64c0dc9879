package services_test

import (
	"fmt"
	"testing"

	"blububb/internal/models"
	"blububb/internal/services"
	"blububb/internal/store"
	"blububb/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of services.Publisher.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func TestTransactionService_CreateTransaction_SequentialIDs(t *testing.T) {
	st := store.NewMemoryStore()
	service := services.NewTransactionService(st, nil)

	for i := 1; i <= 3; i++ {
		tx, err := service.CreateTransaction(models.Record{"total": float64(i * 10)})
		assert.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("BLB%03d", i), tx.ID())
		assert.Equal(t, "pending", tx.String("status"))
		assert.NotEmpty(t, tx.String("date"))
	}
}

func TestTransactionService_CreateTransaction_CounterSurvivesDeletion(t *testing.T) {
	st := store.NewMemoryStore()
	service := services.NewTransactionService(st, nil)

	for i := 0; i < 3; i++ {
		_, err := service.CreateTransaction(models.Record{})
		assert.NoError(t, err)
	}

	// Remove one transaction behind the service's back. The next id must not
	// reuse a freed sequence number.
	doc, err := st.Load("transactions")
	assert.NoError(t, err)
	doc.SetRecords("transactions", doc.Records("transactions")[:2])
	assert.NoError(t, st.Save("transactions", doc))

	tx, err := service.CreateTransaction(models.Record{})
	assert.NoError(t, err)
	assert.Equal(t, "BLB004", tx.ID())
}

func TestTransactionService_ListTransactions(t *testing.T) {
	st := store.NewMemoryStore()
	service := services.NewTransactionService(st, nil)

	doc := store.Document{}
	doc.SetRecords("transactions", []models.Record{
		{"id": "BLB001", "date": "2026-08-01", "status": "completed"},
		{"id": "BLB002", "date": "2026-08-15", "status": "pending"},
		{"id": "BLB003", "date": "2026-08-10", "status": "Pending"},
	})
	assert.NoError(t, st.Save("transactions", doc))

	// Always sorted by date descending.
	transactions, err := service.ListTransactions("")
	assert.NoError(t, err)
	assert.Len(t, transactions, 3)
	assert.Equal(t, "BLB002", transactions[0].ID())
	assert.Equal(t, "BLB003", transactions[1].ID())
	assert.Equal(t, "BLB001", transactions[2].ID())

	// Status filter is case-insensitive.
	transactions, err = service.ListTransactions("PENDING")
	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, "BLB002", transactions[0].ID())
	assert.Equal(t, "BLB003", transactions[1].ID())
}

func TestTransactionService_UpdateStatus(t *testing.T) {
	st := store.NewMemoryStore()
	service := services.NewTransactionService(st, nil)

	created, err := service.CreateTransaction(models.Record{"total": 25.0})
	assert.NoError(t, err)

	updated, err := service.UpdateStatus(created.ID(), "completed")
	assert.NoError(t, err)
	assert.Equal(t, "completed", updated.String("status"))

	doc, err := st.Load("transactions")
	assert.NoError(t, err)
	assert.Equal(t, "completed", doc.Records("transactions")[0].String("status"))

	_, err = service.UpdateStatus("missing", "completed")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestTransactionService_CreatePublishesOrderEvent(t *testing.T) {
	st := store.NewMemoryStore()
	mockPub := new(MockPublisher)
	service := services.NewTransactionService(st, mockPub)

	// Pin the routing against the constants the events package declares and
	// binds, so the publisher and the broker topology cannot drift apart.
	mockPub.On("Publish", events.OrderExchange, events.OrderCreatedKey, mock.AnythingOfType("[]uint8")).Return(nil).Once()

	tx, err := service.CreateTransaction(models.Record{"total": 25.0})
	assert.NoError(t, err)
	assert.Equal(t, "BLB001", tx.ID())
	mockPub.AssertExpectations(t)
}

func TestTransactionService_PublishFailureDoesNotFailCreate(t *testing.T) {
	st := store.NewMemoryStore()
	mockPub := new(MockPublisher)
	service := services.NewTransactionService(st, mockPub)

	mockPub.On("Publish", events.OrderExchange, events.OrderCreatedKey, mock.Anything).
		Return(fmt.Errorf("broker unavailable")).Once()

	tx, err := service.CreateTransaction(models.Record{"total": 25.0})
	assert.NoError(t, err)
	assert.Equal(t, "BLB001", tx.ID())

	// The order is persisted even though publication failed.
	doc, err := st.Load("transactions")
	assert.NoError(t, err)
	assert.Len(t, doc.Records("transactions"), 1)
	mockPub.AssertExpectations(t)
}
