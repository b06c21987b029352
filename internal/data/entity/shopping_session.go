package entity

import "github.com/google/uuid"

// ShoppingSession is a user's cart container, created lazily on the first
// cart interaction. One session per user, enforced by a unique constraint.
type ShoppingSession struct {
	BaseSimple
	UserID uuid.UUID `db:"user_id"`

	Items []CartItem
}
