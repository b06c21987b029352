package utils

import (
	"context"

	"ecommerce-backend/internal/data/entity"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	UserKey   contextKey = "user"
)

// SetUserContext records the authenticated user (with roles loaded) on the
// request context.
func SetUserContext(ctx context.Context, user *entity.User) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, user.ID.String())
	return context.WithValue(ctx, UserKey, user)
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	userVal := ctx.Value(UserKey)
	if userVal == nil {
		return nil, false
	}

	user, ok := userVal.(*entity.User)
	return user, ok
}
