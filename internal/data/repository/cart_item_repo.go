package repository

import (
	"context"
	"fmt"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartItemRepository interface {
	Upsert(ctx context.Context, sessionID, productID uuid.UUID, quantity int) (*entity.CartItem, error)
	FindByIDAndSession(ctx context.Context, id, sessionID uuid.UUID) (*entity.CartItem, error)
	UpdateQuantity(ctx context.Context, id, sessionID uuid.UUID, quantity int) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type cartItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartItemRepository(db database.PgxIface, log *zap.Logger) CartItemRepository {
	return &cartItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "cart_item")),
	}
}

// Upsert inserts a cart line or, if one already exists for the
// (session, product) pair, adds the quantity to it. The conflict target is
// the unique index on (session_id, product_id), which makes concurrent adds
// fold into a single row.
func (cr *cartItemRepository) Upsert(ctx context.Context, sessionID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	query := `
		INSERT INTO cart_items (id, session_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
		RETURNING id, session_id, product_id, quantity, created_at
	`

	var item entity.CartItem
	err := cr.db.QueryRow(ctx, query, uuid.New(), sessionID, productID, quantity, time.Now()).Scan(
		&item.ID,
		&item.SessionID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)

	if err != nil {
		cr.log.Error("Failed to upsert cart item",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("upsert cart item for session %s: %w", sessionID.String(), err)
	}

	return &item, nil
}

func (cr *cartItemRepository) FindByIDAndSession(ctx context.Context, id, sessionID uuid.UUID) (*entity.CartItem, error) {
	query := `
		SELECT id, session_id, product_id, quantity, created_at
		FROM cart_items
		WHERE id = $1 AND session_id = $2
	`

	var item entity.CartItem
	err := cr.db.QueryRow(ctx, query, id, sessionID).Scan(
		&item.ID,
		&item.SessionID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find cart item",
			zap.Error(err),
			zap.String("cart_item_id", id.String()),
		)
		return nil, fmt.Errorf("find cart item %s: %w", id.String(), err)
	}

	return &item, nil
}

// UpdateQuantity sets the quantity of a cart line scoped to its session and
// returns the number of rows matched.
func (cr *cartItemRepository) UpdateQuantity(ctx context.Context, id, sessionID uuid.UUID, quantity int) (int64, error) {
	query := `
		UPDATE cart_items
		SET quantity = $3
		WHERE id = $1 AND session_id = $2
	`

	result, err := cr.db.Exec(ctx, query, id, sessionID, quantity)
	if err != nil {
		cr.log.Error("Failed to update cart item quantity",
			zap.Error(err),
			zap.String("cart_item_id", id.String()),
		)
		return 0, fmt.Errorf("update cart item %s: %w", id.String(), err)
	}

	return result.RowsAffected(), nil
}

func (cr *cartItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM cart_items WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete cart item",
			zap.Error(err),
			zap.String("cart_item_id", id.String()),
		)
		return fmt.Errorf("delete cart item %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cart item %s not found", id.String())
	}

	return nil
}
