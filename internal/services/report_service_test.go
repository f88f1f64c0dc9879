package services_test

import (
	"testing"

	"blububb/internal/models"
	"blububb/internal/services"
	"blububb/internal/store"

	"github.com/stretchr/testify/assert"
)

func TestReportService_Summary(t *testing.T) {
	st := store.NewMemoryStore()
	service := services.NewReportService(st)

	products := store.Document{}
	products.SetRecords("products", []models.Record{{"id": "1"}, {"id": "2"}})
	assert.NoError(t, st.Save("products", products))

	members := store.Document{}
	members.SetRecords("members", []models.Record{{"id": "1"}})
	assert.NoError(t, st.Save("members", members))

	transactions := store.Document{}
	transactions.SetRecords("transactions", []models.Record{
		{"id": "BLB001", "status": "completed", "total": 50.0},
		{"id": "BLB002", "status": "completed", "total": 25.5},
		{"id": "BLB003", "status": "pending", "total": 100.0},
		{"id": "BLB004", "status": "cancelled", "total": 10.0},
	})
	assert.NoError(t, st.Save("transactions", transactions))

	summary, err := service.Summary()
	assert.NoError(t, err)
	assert.Equal(t, 2, summary["total_products"])
	assert.Equal(t, 1, summary["total_members"])
	assert.Equal(t, 4, summary["total_transactions"])
	// Revenue counts completed transactions only.
	assert.Equal(t, 75.5, summary["total_revenue"])
	assert.Equal(t, 1, summary["pending_orders"])
}

func TestReportService_Summary_EmptyCollections(t *testing.T) {
	st := store.NewMemoryStore()
	service := services.NewReportService(st)

	summary, err := service.Summary()
	assert.NoError(t, err)
	assert.Equal(t, 0, summary["total_products"])
	assert.Equal(t, 0, summary["total_members"])
	assert.Equal(t, 0, summary["total_transactions"])
	assert.Equal(t, 0.0, summary["total_revenue"])
	assert.Equal(t, 0, summary["pending_orders"])
}
