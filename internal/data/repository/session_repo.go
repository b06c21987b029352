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

type SessionRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ShoppingSession, error)
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.ShoppingSession, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

// FindByUserID returns the user's shopping session with its cart items and
// their products eagerly loaded, or nil if the user has no session yet.
func (sr *sessionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ShoppingSession, error) {
	query := `
		SELECT id, user_id, created_at
		FROM shopping_sessions
		WHERE user_id = $1
	`

	var session entity.ShoppingSession
	err := sr.db.QueryRow(ctx, query, userID).Scan(
		&session.ID,
		&session.UserID,
		&session.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find session by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find session for user %s: %w", userID.String(), err)
	}

	items, err := sr.loadItems(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	session.Items = items

	return &session, nil
}

// GetOrCreate returns the user's session, creating an empty one if none
// exists. ON CONFLICT DO NOTHING makes concurrent first requests converge on
// a single row instead of racing into duplicates.
func (sr *sessionRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.ShoppingSession, error) {
	session, err := sr.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	query := `
		INSERT INTO shopping_sessions (id, user_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
	`

	_, err = sr.db.Exec(ctx, query, uuid.New(), userID, time.Now())
	if err != nil {
		sr.log.Error("Failed to create session",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("create session for user %s: %w", userID.String(), err)
	}

	// Re-select: either our insert landed or a concurrent one did.
	session, err = sr.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, fmt.Errorf("session for user %s not found after insert", userID.String())
	}

	return session, nil
}

func (sr *sessionRepository) loadItems(ctx context.Context, sessionID uuid.UUID) ([]entity.CartItem, error) {
	query := `
		SELECT ci.id, ci.session_id, ci.product_id, ci.quantity, ci.created_at,
		       p.id, p.name, p.description, p.price, p.stock, p.category_id,
		       p.created_by_id, p.created_at, p.updated_at, p.deleted_at
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.session_id = $1
		ORDER BY ci.created_at ASC
	`

	rows, err := sr.db.Query(ctx, query, sessionID)
	if err != nil {
		sr.log.Error("Failed to load cart items",
			zap.Error(err),
			zap.String("session_id", sessionID.String()),
		)
		return nil, fmt.Errorf("load cart items for session %s: %w", sessionID.String(), err)
	}
	defer rows.Close()

	var items []entity.CartItem
	for rows.Next() {
		var item entity.CartItem
		var product entity.Product
		err := rows.Scan(
			&item.ID,
			&item.SessionID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.CategoryID,
			&product.CreatedByID,
			&product.CreatedAt,
			&product.UpdatedAt,
			&product.DeletedAt,
		)
		if err != nil {
			sr.log.Error("Failed to scan cart item row", zap.Error(err))
			return nil, fmt.Errorf("scan cart item row: %w", err)
		}
		item.Product = &product
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		sr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate cart item rows: %w", err)
	}

	return items, nil
}
