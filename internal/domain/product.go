package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// priceFormat accepts a positive decimal with up to two fraction digits,
// matching the NUMERIC(10,2) column the value is stored in.
var priceFormat = regexp.MustCompile(`^\d{1,8}(\.\d{1,2})?$`)

// Product is a catalog item. It references its Category by ID only.
type Product struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Ingredients  string    `json:"ingredients,omitempty"`
	Price        string    `json:"price"`
	Weight       int16     `json:"weight,omitempty"`
	CaloricValue int16     `json:"caloric_value,omitempty"`
	CategoryID   uuid.UUID `json:"category_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProduct creates a Product with a fresh ID and timestamps.
func NewProduct(name, price string, categoryID uuid.UUID) (*Product, error) {
	now := time.Now().UTC()
	product := &Product{
		ID:         uuid.New(),
		Name:       name,
		Price:      price,
		CategoryID: categoryID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate checks the Product's invariants.
func (p *Product) Validate() error {
	if p.ID == uuid.Nil {
		return ErrEmptyProductID
	}
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProductName
	}
	if !priceFormat.MatchString(p.Price) || p.Price == "0" || p.Price == "0.0" || p.Price == "0.00" {
		return ErrInvalidPrice
	}
	if p.CategoryID == uuid.Nil {
		return ErrMissingCategoryID
	}
	return nil
}
