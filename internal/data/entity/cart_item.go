package entity

import "github.com/google/uuid"

// CartItem is one cart line: a (session, product) pair with a quantity.
// Uniqueness of the pair is enforced by the database, so concurrent adds
// fold into one row instead of racing into duplicates.
type CartItem struct {
	BaseSimple
	SessionID uuid.UUID `db:"session_id"`
	ProductID uuid.UUID `db:"product_id"`
	Quantity  int       `db:"quantity"`

	Product *Product
}
