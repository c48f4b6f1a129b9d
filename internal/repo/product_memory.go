package repo

import (
	"github.com/rogerio-castellano/inventory-form/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
// It is meant to live for a single request.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewSeededProductRepository creates a repository holding the seed products.
func NewSeededProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: models.SeedProducts(),
	}
}

// Create appends a product. IDs are assigned by validation, so the product
// is stored as given.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == product.ID {
			return models.Product{}, ErrDuplicatedProductID
		}
	}
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products in insertion order.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *InMemoryProductRepository) Count() int {
	return len(r.products)
}
