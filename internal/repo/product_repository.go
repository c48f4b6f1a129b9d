package repo

import (
	"errors"

	"github.com/rogerio-castellano/inventory-form/internal/models"
)

// ErrDuplicatedProductID is returned when a product with the same ID is already listed.
var ErrDuplicatedProductID = errors.New("product id already exists")

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	Count() int
}
