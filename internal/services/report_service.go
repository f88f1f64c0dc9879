package services

import (
	"fmt"

	"blububb/internal/models"
	"blububb/internal/store"
)

// ReportService computes read-only aggregates over the three collections.
type ReportService struct {
	store store.Store
}

// NewReportService creates a new ReportService.
func NewReportService(st store.Store) *ReportService {
	return &ReportService{
		store: st,
	}
}

// Summary returns the dashboard aggregates: collection sizes, revenue over
// completed transactions and the number of pending orders.
func (s *ReportService) Summary() (models.Record, error) {
	productsDoc, err := s.store.Load(productsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	membersDoc, err := s.store.Load(membersCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	transactionsDoc, err := s.store.Load(transactionsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	transactions := transactionsDoc.Records(transactionsCollection)
	var revenue float64
	pending := 0
	for _, t := range transactions {
		switch t.String("status") {
		case "completed":
			revenue += t.Float("total")
		case "pending":
			pending++
		}
	}

	return models.Record{
		"total_products":     len(productsDoc.Records(productsCollection)),
		"total_members":      len(membersDoc.Records(membersCollection)),
		"total_transactions": len(transactions),
		"total_revenue":      revenue,
		"pending_orders":     pending,
	}, nil
}
