package middleware

import (
	"net/http"
	"strings"

	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/apperr"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate validates the bearer token, loads the user with roles and
// places both on the request context. Tokens issued before the user's last
// password change are rejected: every session minted before that point is void.
func Authenticate(repo *repository.Repository, config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.ResponseError(w, apperr.Unauthorized("Authorization token is required"))
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")

			userID, issuedAt, err := utils.ParseSessionToken(config.JWT.Secret, token)
			if err != nil {
				logger.Warn("Invalid session token", zap.Error(err))
				utils.ResponseError(w, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			user, err := repo.User.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for auth",
					zap.Error(err),
					zap.String("user_id", userID.String()),
				)
				utils.ResponseError(w, err)
				return
			}

			if user == nil {
				utils.ResponseError(w, apperr.Unauthorized("Invalid session"))
				return
			}
			if !user.IsActive {
				utils.ResponseError(w, apperr.Unauthorized("User is inactive"))
				return
			}
			if !user.IsEmailVerified {
				utils.ResponseError(w, apperr.Unauthorized("Email is not verified"))
				return
			}
			// Token iat is truncated to the second, so a change within the
			// same second also voids it.
			if user.PasswordChangedAt != nil && !issuedAt.After(*user.PasswordChangedAt) {
				utils.ResponseError(w, apperr.Unauthorized("User recently changed password. Please login again"))
				return
			}

			roles, err := repo.Role.FindByUserID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load roles for auth",
					zap.Error(err),
					zap.String("user_id", userID.String()),
				)
				utils.ResponseError(w, err)
				return
			}
			user.Roles = roles

			ctx := utils.SetUserContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Authorize allows the request only if the authenticated user holds one of
// the given roles. Role names compare case-insensitively.
func Authorize(allowedRoles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				utils.ResponseError(w, apperr.Forbidden("Access denied. User not found."))
				return
			}

			if !user.HasAnyRole(allowedRoles...) {
				utils.ResponseError(w, apperr.Forbidden("Access denied. Insufficient permissions."))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
