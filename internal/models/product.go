package models

import "github.com/shopspring/decimal"

// Product represents a product entity in the inventory list.
// Name, Description and Category hold HTML-escaped text.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    Category        `json:"category"`
}

// SeedProducts returns a fresh copy of the products every request starts with.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Laptop",
			Description: "High performance laptop",
			Price:       decimal.NewFromInt(1200),
			Category:    Electronics,
		},
		{
			ID:          2,
			Name:        "Book",
			Description: "Programming in PHP",
			Price:       decimal.NewFromInt(35),
			Category:    Books,
		},
	}
}
