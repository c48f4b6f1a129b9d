package repo

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/inventory-form/internal/models"
	"github.com/shopspring/decimal"
)

func TestSeededRepository(t *testing.T) {
	r := NewSeededProductRepository()

	products, err := r.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 seed products, got %d", len(products))
	}
	if products[0].Name != "Laptop" || products[1].Name != "Book" {
		t.Errorf("unexpected seed order: %q, %q", products[0].Name, products[1].Name)
	}
	if r.Count() != 2 {
		t.Errorf("Count() = %d, want 2", r.Count())
	}
}

func TestCreateAppends(t *testing.T) {
	r := NewSeededProductRepository()
	mouse := models.Product{ID: 3, Name: "Mouse", Description: "Wireless mouse", Price: decimal.NewFromInt(25), Category: models.Electronics}

	created, err := r.Create(mouse)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID != 3 {
		t.Errorf("expected id 3, got %d", created.ID)
	}

	products, _ := r.GetAll()
	if len(products) != 3 || products[2].Name != "Mouse" {
		t.Errorf("expected Mouse appended last, got %+v", products)
	}
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	r := NewSeededProductRepository()

	_, err := r.Create(models.Product{ID: 1, Name: "Other"})
	if !errors.Is(err, ErrDuplicatedProductID) {
		t.Errorf("expected ErrDuplicatedProductID, got %v", err)
	}
	if r.Count() != 2 {
		t.Errorf("duplicate must not be stored, count = %d", r.Count())
	}
}

func TestRepositoriesAreIndependent(t *testing.T) {
	first := NewSeededProductRepository()
	if _, err := first.Create(models.Product{ID: 3, Name: "Mouse"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	second := NewSeededProductRepository()
	if second.Count() != 2 {
		t.Errorf("a new repository must start from the seed, got %d products", second.Count())
	}
}

func TestGetAllReturnsCopy(t *testing.T) {
	r := NewSeededProductRepository()
	products, _ := r.GetAll()
	products[0].Name = "changed"

	again, _ := r.GetAll()
	if again[0].Name != "Laptop" {
		t.Errorf("GetAll() exposed internal slice")
	}
}
