package wire

import (
	"ecommerce-backend/internal/adaptor"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/middleware"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/auth", func(r chi.Router) {
		// Public routes
		r.Post("/signup", authHandler.SignUp)
		r.Patch("/verify", authHandler.VerifyEmail)
		r.Post("/resendVerification", authHandler.ResendVerification)
		r.Post("/login", authHandler.Login)
		r.Post("/forgotPassword", authHandler.ForgotPassword)
		r.Patch("/resetPassword", authHandler.ResetPassword)

		// Requires an authenticated session
		r.With(middleware.Authenticate(repo, config, log)).
			Patch("/changePassword", authHandler.ChangePassword)
	})
}
