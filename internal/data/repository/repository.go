package repository

import (
	"errors"

	"ecommerce-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Role     RoleRepository
	Category CategoryRepository
	Product  ProductRepository
	Session  SessionRepository
	CartItem CartItemRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Role:     NewRoleRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Product:  NewProductRepository(db, log),
		Session:  NewSessionRepository(db, log),
		CartItem: NewCartItemRepository(db, log),
	}
}

// IsUniqueViolation reports whether err wraps a Postgres unique constraint
// violation (SQLSTATE 23505). The unique indexes on users.email, users.phone
// and product_categories.name back the application-level duplicate checks.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
