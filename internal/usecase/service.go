package usecase

import (
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

// Mailer is the slice of the SMTP dispatcher the auth service needs.
type Mailer interface {
	SendVerificationEmail(to, name, token string) error
	SendPasswordResetEmail(to, name, token string) error
}

type Service struct {
	Auth     AuthService
	Category CategoryService
	Product  ProductService
	Cart     CartService
}

func NewService(repo *repository.Repository, config *utils.Config, mail Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, mail, log),
		Category: NewCategoryService(repo, log),
		Product:  NewProductService(repo, log),
		Cart:     NewCartService(repo, log),
	}
}
