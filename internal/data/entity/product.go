package entity

import "github.com/google/uuid"

type Product struct {
	Base
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	Price       float64   `db:"price"`
	Stock       int       `db:"stock"`
	CategoryID  uuid.UUID `db:"category_id"`
	CreatedByID uuid.UUID `db:"created_by_id"`

	// Category is populated on list/detail reads.
	Category *ProductCategory
}

// IsDeleted reports whether the product has been soft-deleted.
func (p *Product) IsDeleted() bool {
	return p.DeletedAt != nil
}
