package services

import (
	"fmt"
	"strings"
	"time"

	"blububb/internal/models"
	"blububb/internal/store"

	"github.com/google/uuid"
)

const productsCollection = "products"

const dateLayout = "2006-01-02"

// newRecordID returns the short token used as a record id: the first eight
// characters of a random UUID.
func newRecordID() string {
	return uuid.New().String()[:8]
}

func today() string {
	return time.Now().Format(dateLayout)
}

// ProductService handles business logic related to products.
type ProductService struct {
	store store.Store
}

// NewProductService creates a new ProductService.
func NewProductService(st store.Store) *ProductService {
	return &ProductService{
		store: st,
	}
}

// ListProducts retrieves products, optionally filtered by category
// (case-insensitive) and by the featured flag.
func (s *ProductService) ListProducts(category string, featuredOnly bool) ([]models.Record, error) {
	doc, err := s.store.Load(productsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	products := doc.Records(productsCollection)
	filtered := make([]models.Record, 0, len(products))
	for _, p := range products {
		if category != "" && !strings.EqualFold(p.String("category"), category) {
			continue
		}
		if featuredOnly && !p.Bool("featured") {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered, nil
}

// GetProduct retrieves a single product by its id.
func (s *ProductService) GetProduct(id string) (models.Record, error) {
	doc, err := s.store.Load(productsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	for _, p := range doc.Records(productsCollection) {
		if p.ID() == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
}

// CreateProduct assigns an id and the active status, appends the product to
// the collection and persists it.
func (s *ProductService) CreateProduct(product models.Record) (models.Record, error) {
	doc, err := s.store.Load(productsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	product = product.Clone()
	product["id"] = newRecordID()
	product["status"] = "active"

	products := append(doc.Records(productsCollection), product)
	doc.SetRecords(productsCollection, products)
	if err := s.store.Save(productsCollection, doc); err != nil {
		return nil, fmt.Errorf("failed to save products: %w", err)
	}
	return product, nil
}

// UpdateProduct shallow-merges the supplied fields over the first product
// with a matching id and persists the collection.
func (s *ProductService) UpdateProduct(id string, updates models.Record) (models.Record, error) {
	doc, err := s.store.Load(productsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	products := doc.Records(productsCollection)
	for _, p := range products {
		if p.ID() != id {
			continue
		}
		p.Merge(updates)
		doc.SetRecords(productsCollection, products)
		if err := s.store.Save(productsCollection, doc); err != nil {
			return nil, fmt.Errorf("failed to save products: %w", err)
		}
		return p, nil
	}
	return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
}

// DeleteProduct removes the product with the given id. The collection is
// only rewritten when something was actually removed.
func (s *ProductService) DeleteProduct(id string) error {
	doc, err := s.store.Load(productsCollection)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	products := doc.Records(productsCollection)
	kept := make([]models.Record, 0, len(products))
	for _, p := range products {
		if p.ID() != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}

	doc.SetRecords(productsCollection, kept)
	if err := s.store.Save(productsCollection, doc); err != nil {
		return fmt.Errorf("failed to save products: %w", err)
	}
	return nil
}
