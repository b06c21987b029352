package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/apperr"
	"ecommerce-backend/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, req *request.SignupRequest) (*response.UserSummary, error)
	VerifyEmail(ctx context.Context, token string) (*response.UserSummary, error)
	ResendVerification(ctx context.Context, email string) error
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (*response.UserSummary, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) (*response.UserSummary, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	mail   Mailer
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mail Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mail:   mail,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) verifyTTL() time.Duration {
	return time.Duration(s.config.JWT.VerifyExpiryHours) * time.Hour
}

func (s *authService) resetTTL() time.Duration {
	return time.Duration(s.config.JWT.ResetExpiryMinutes) * time.Minute
}

func (s *authService) sessionTTL() time.Duration {
	return time.Duration(s.config.JWT.SessionExpiryHours) * time.Hour
}

func (s *authService) SignUp(ctx context.Context, req *request.SignupRequest) (*response.UserSummary, error) {
	// Existing email or phone is a duplicate; the unique constraints on both
	// columns back this check against concurrent signups.
	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("This email is in use")
	}

	existing, err = s.repo.User.FindByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate("This phone number is in use")
	}

	token, err := utils.GenerateEmailToken(s.config.JWT.Secret, req.Email, s.verifyTTL())
	if err != nil {
		s.log.Error("Failed to create verification token", zap.Error(err))
		return nil, fmt.Errorf("create verification token: %w", err)
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		PasswordHash:      hashedPassword,
		IsEmailVerified:   false,
		IsActive:          false,
		VerificationToken: &token,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperr.Duplicate("This email or phone number is in use")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	// The user row stays even if dispatch fails; the caller can request a
	// resend instead of signing up again.
	if err := s.mail.SendVerificationEmail(user.Email, user.Name, token); err != nil {
		s.log.Error("Failed to send verification email",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return nil, apperr.Internal("Failed to send verification email", err)
	}

	s.log.Info("User signed up",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	return userSummary(user), nil
}

func (s *authService) VerifyEmail(ctx context.Context, token string) (*response.UserSummary, error) {
	email, err := utils.ParseEmailToken(s.config.JWT.Secret, token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.BadRequest("Verification token has expired, request a new one")
		}
		return nil, apperr.BadRequest("Invalid verification token")
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user for verification: %w", err)
	}
	if user == nil {
		return nil, apperr.BadRequest("Email link is invalid")
	}
	if user.IsEmailVerified {
		return nil, apperr.BadRequest("User is already verified")
	}

	user.IsEmailVerified = true
	user.IsActive = true
	user.VerificationToken = nil
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("mark user verified: %w", err)
	}

	s.log.Info("User verified", zap.String("user_id", user.ID.String()))

	return userSummary(user), nil
}

func (s *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find user for resend: %w", err)
	}
	if user == nil {
		return apperr.NotFound("User not found")
	}
	if user.IsEmailVerified {
		return apperr.BadRequest("Email is already verified")
	}

	token, err := utils.GenerateEmailToken(s.config.JWT.Secret, user.Email, s.verifyTTL())
	if err != nil {
		s.log.Error("Failed to create verification token", zap.Error(err))
		return fmt.Errorf("create verification token: %w", err)
	}

	user.VerificationToken = &token
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("store verification token: %w", err)
	}

	if err := s.mail.SendVerificationEmail(user.Email, user.Name, token); err != nil {
		s.log.Error("Failed to send verification email",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return apperr.Internal("Failed to send verification email", err)
	}

	return nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user for login: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User with given email is not found")
	}
	if !user.IsEmailVerified {
		return nil, apperr.BadRequest("Email is not verified. Please verify your email before logging in")
	}
	if !user.IsActive {
		return nil, apperr.Unauthorized("Your account is restricted. Please contact support")
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, apperr.Unauthorized("Invalid email or password")
	}

	token, err := utils.GenerateSessionToken(s.config.JWT.Secret, user.ID, s.sessionTTL())
	if err != nil {
		s.log.Error("Failed to create session token", zap.Error(err))
		return nil, fmt.Errorf("create session token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.LoginResponse{
		Token: token,
		User:  *userSummary(user),
	}, nil
}

func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("find user for password reset: %w", err)
	}
	if user == nil {
		return apperr.NotFound("User with email does not exist")
	}
	if !user.IsActive {
		return apperr.Unauthorized("Your account is restricted. Please contact support")
	}
	if !user.IsEmailVerified {
		return apperr.BadRequest("Email is not verified. Please verify your email before resetting password")
	}

	token, err := utils.GenerateEmailToken(s.config.JWT.Secret, email, s.resetTTL())
	if err != nil {
		s.log.Error("Failed to create reset token", zap.Error(err))
		return fmt.Errorf("create reset token: %w", err)
	}

	// Persisting the token lets the reset step reject superseded links.
	user.PasswordResetToken = &token
	user.UpdatedAt = time.Now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}

	if err := s.mail.SendPasswordResetEmail(user.Email, user.Name, token); err != nil {
		s.log.Error("Failed to send password reset email",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return apperr.Internal("Failed to send password reset email", err)
	}

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) (*response.UserSummary, error) {
	email, err := utils.ParseEmailToken(s.config.JWT.Secret, req.Token)
	if err != nil {
		return nil, apperr.BadRequest("Invalid or expired token")
	}

	if req.Password != req.ConfirmPassword {
		return nil, apperr.BadRequest("Passwords do not match")
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user for password reset: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User with email does not exist")
	}
	if !user.IsActive {
		return nil, apperr.Unauthorized("Your account is restricted. Please contact support")
	}
	if !user.IsEmailVerified {
		return nil, apperr.BadRequest("Email is not verified. Please verify your email before resetting password")
	}

	// A token that does not match the stored one has been superseded by a
	// newer forgot-password request, or was already consumed.
	if user.PasswordResetToken == nil || *user.PasswordResetToken != req.Token {
		return nil, apperr.BadRequest("Invalid or expired token")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user.PasswordHash = hashedPassword
	user.PasswordResetToken = nil
	user.PasswordChangedAt = &now
	user.UpdatedAt = now

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))

	return userSummary(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) (*response.UserSummary, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user for password change: %w", err)
	}
	if user == nil {
		return nil, apperr.Unauthorized("Invalid session")
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid password")
	}
	if req.OldPassword == req.NewPassword {
		return nil, apperr.BadRequest("New password must be different from the old one")
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user.PasswordHash = hashedPassword
	user.PasswordChangedAt = &now
	user.UpdatedAt = now

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update password: %w", err)
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID.String()))

	return userSummary(user), nil
}

func userSummary(user *entity.User) *response.UserSummary {
	return &response.UserSummary{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Phone: user.Phone,
	}
}
