package usecase

import (
	"context"
	"fmt"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/dto/response"
	"ecommerce-backend/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CartService interface {
	GetOrCreateSession(ctx context.Context, userID string) (*response.SessionResponse, error)
	AddItemToCart(ctx context.Context, req *request.AddCartItemRequest) (*response.CartItemResponse, error)
	RemoveItemFromCart(ctx context.Context, req *request.RemoveCartItemRequest) error
	UpdateCartItemQuantity(ctx context.Context, req *request.UpdateCartItemQuantityRequest) (*response.SessionResponse, error)
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log.With(zap.String("service", "cart")),
	}
}

func (s *cartService) GetOrCreateSession(ctx context.Context, userID string) (*response.SessionResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user id")
	}

	session, err := s.repo.Session.GetOrCreate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get or create session: %w", err)
	}

	return sessionResponse(session), nil
}

func (s *cartService) AddItemToCart(ctx context.Context, req *request.AddCartItemRequest) (*response.CartItemResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user id")
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid product id")
	}

	session, err := s.repo.Session.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create session: %w", err)
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("check product: %w", err)
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}

	// One atomic upsert per cart line: a second add for the same product
	// accumulates quantity instead of inserting a duplicate row.
	item, err := s.repo.CartItem.Upsert(ctx, session.ID, productID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("add item to cart: %w", err)
	}

	s.log.Info("Cart item added",
		zap.String("session_id", session.ID.String()),
		zap.String("product_id", productID.String()),
		zap.Int("quantity", req.Quantity),
	)

	return cartItemResponse(item), nil
}

func (s *cartService) RemoveItemFromCart(ctx context.Context, req *request.RemoveCartItemRequest) error {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return apperr.BadRequest("Invalid user id")
	}
	cartItemID, err := uuid.Parse(req.CartItemID)
	if err != nil {
		return apperr.BadRequest("Invalid cart item id")
	}

	session, err := s.repo.Session.GetOrCreate(ctx, userID)
	if err != nil {
		return fmt.Errorf("get or create session: %w", err)
	}

	item, err := s.repo.CartItem.FindByIDAndSession(ctx, cartItemID, session.ID)
	if err != nil {
		return fmt.Errorf("find cart item: %w", err)
	}
	if item == nil {
		return apperr.NotFound("Cart item not found")
	}

	if err := s.repo.CartItem.Delete(ctx, cartItemID); err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}

	return nil
}

func (s *cartService) UpdateCartItemQuantity(ctx context.Context, req *request.UpdateCartItemQuantityRequest) (*response.SessionResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user id")
	}
	cartItemID, err := uuid.Parse(req.CartItemID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid cart item id")
	}

	session, err := s.repo.Session.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get or create session: %w", err)
	}

	affected, err := s.repo.CartItem.UpdateQuantity(ctx, cartItemID, session.ID, req.Quantity)
	if err != nil {
		return nil, fmt.Errorf("update cart item quantity: %w", err)
	}
	if affected == 0 {
		return nil, apperr.NotFound("Cart item not found")
	}

	// Re-read so the response reflects the updated line.
	session, err = s.repo.Session.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("reload session: %w", err)
	}

	return sessionResponse(session), nil
}

func sessionResponse(session *entity.ShoppingSession) *response.SessionResponse {
	items := make([]response.CartItemResponse, len(session.Items))
	for i := range session.Items {
		items[i] = *cartItemResponse(&session.Items[i])
	}

	return &response.SessionResponse{
		ID:        session.ID,
		UserID:    session.UserID,
		CartItems: items,
		CreatedAt: session.CreatedAt,
	}
}

func cartItemResponse(item *entity.CartItem) *response.CartItemResponse {
	resp := &response.CartItemResponse{
		ID:        item.ID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: item.CreatedAt,
	}
	if item.Product != nil {
		resp.Product = productResponse(item.Product)
	}
	return resp
}
