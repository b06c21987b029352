package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// In-memory repository fakes. They mirror the semantics the SQL layer
// guarantees: copies on read, upsert accumulation on cart lines, one session
// per user.

type fakeUserRepo struct {
	users     []*entity.User
	createErr error
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByPhone(_ context.Context, phone string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Phone == phone {
			found := *user
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	for i, stored := range f.users {
		if stored.ID == user.ID {
			updated := *user
			f.users[i] = &updated
			return nil
		}
	}
	return errors.New("user not found")
}

type fakeRoleRepo struct {
	rolesByUser map[uuid.UUID][]entity.Role
}

func (f *fakeRoleRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]entity.Role, error) {
	return f.rolesByUser[userID], nil
}

type fakeCategoryRepo struct {
	categories []*entity.ProductCategory
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.ProductCategory) error {
	stored := *category
	f.categories = append(f.categories, &stored)
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ProductCategory, error) {
	for _, category := range f.categories {
		if category.ID == id && category.DeletedAt == nil {
			found := *category
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByName(_ context.Context, name string) (*entity.ProductCategory, error) {
	for _, category := range f.categories {
		if category.Name == name && category.DeletedAt == nil {
			found := *category
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]*entity.ProductCategory, error) {
	var result []*entity.ProductCategory
	for _, category := range f.categories {
		if category.DeletedAt == nil {
			found := *category
			result = append(result, &found)
		}
	}
	return result, nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	stored := *product
	f.products = append(f.products, &stored)
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	for _, product := range f.products {
		if product.ID == id {
			found := *product
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, offset, limit int, orderBy, order string) ([]*entity.Product, error) {
	var live []*entity.Product
	for _, product := range f.products {
		if product.DeletedAt == nil {
			found := *product
			live = append(live, &found)
		}
	}

	sort.SliceStable(live, func(i, j int) bool {
		var less bool
		if orderBy == "price" {
			less = live[i].Price < live[j].Price
		} else {
			less = live[i].Name < live[j].Name
		}
		if order == "DESC" {
			return !less
		}
		return less
	})

	if offset >= len(live) {
		return nil, nil
	}
	end := offset + limit
	if end > len(live) {
		end = len(live)
	}
	return live[offset:end], nil
}

func (f *fakeProductRepo) CountAll(_ context.Context) (int64, error) {
	var count int64
	for _, product := range f.products {
		if product.DeletedAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	for i, stored := range f.products {
		if stored.ID == product.ID && stored.DeletedAt == nil {
			updated := *product
			f.products[i] = &updated
			return nil
		}
	}
	return errors.New("product not found")
}

func (f *fakeProductRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	for _, product := range f.products {
		if product.ID == id && product.DeletedAt == nil {
			now := time.Now()
			product.DeletedAt = &now
			return nil
		}
	}
	return errors.New("product not found")
}

type fakeCartItemRepo struct {
	items []*entity.CartItem
}

func (f *fakeCartItemRepo) Upsert(_ context.Context, sessionID, productID uuid.UUID, quantity int) (*entity.CartItem, error) {
	for _, item := range f.items {
		if item.SessionID == sessionID && item.ProductID == productID {
			item.Quantity += quantity
			found := *item
			return &found, nil
		}
	}

	item := &entity.CartItem{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		SessionID:  sessionID,
		ProductID:  productID,
		Quantity:   quantity,
	}
	f.items = append(f.items, item)
	created := *item
	return &created, nil
}

func (f *fakeCartItemRepo) FindByIDAndSession(_ context.Context, id, sessionID uuid.UUID) (*entity.CartItem, error) {
	for _, item := range f.items {
		if item.ID == id && item.SessionID == sessionID {
			found := *item
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeCartItemRepo) UpdateQuantity(_ context.Context, id, sessionID uuid.UUID, quantity int) (int64, error) {
	for _, item := range f.items {
		if item.ID == id && item.SessionID == sessionID {
			item.Quantity = quantity
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeCartItemRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("cart item not found")
}

type fakeSessionRepo struct {
	sessions map[uuid.UUID]*entity.ShoppingSession
	cart     *fakeCartItemRepo
}

func newFakeSessionRepo(cart *fakeCartItemRepo) *fakeSessionRepo {
	return &fakeSessionRepo{
		sessions: make(map[uuid.UUID]*entity.ShoppingSession),
		cart:     cart,
	}
}

func (f *fakeSessionRepo) FindByUserID(_ context.Context, userID uuid.UUID) (*entity.ShoppingSession, error) {
	session, ok := f.sessions[userID]
	if !ok {
		return nil, nil
	}

	found := *session
	found.Items = nil
	for _, item := range f.cart.items {
		if item.SessionID == session.ID {
			found.Items = append(found.Items, *item)
		}
	}
	return &found, nil
}

func (f *fakeSessionRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.ShoppingSession, error) {
	if session, err := f.FindByUserID(ctx, userID); err != nil || session != nil {
		return session, err
	}

	session := &entity.ShoppingSession{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:     userID,
	}
	f.sessions[userID] = session
	created := *session
	return &created, nil
}

type fakeMailer struct {
	verificationSent []string
	resetSent        []string
	sendErr          error
}

func (f *fakeMailer) SendVerificationEmail(to, name, token string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.verificationSent = append(f.verificationSent, to)
	return nil
}

func (f *fakeMailer) SendPasswordResetEmail(to, name, token string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.resetSent = append(f.resetSent, to)
	return nil
}

type testEnv struct {
	users    *fakeUserRepo
	roles    *fakeRoleRepo
	cats     *fakeCategoryRepo
	products *fakeProductRepo
	cart     *fakeCartItemRepo
	sessions *fakeSessionRepo
	mail     *fakeMailer
	repo     *repository.Repository
	config   *utils.Config
}

func newTestEnv() *testEnv {
	cart := &fakeCartItemRepo{}
	env := &testEnv{
		users:    &fakeUserRepo{},
		roles:    &fakeRoleRepo{rolesByUser: make(map[uuid.UUID][]entity.Role)},
		cats:     &fakeCategoryRepo{},
		products: &fakeProductRepo{},
		cart:     cart,
		sessions: newFakeSessionRepo(cart),
		mail:     &fakeMailer{},
		config: &utils.Config{
			JWT: utils.JWTConfig{
				Secret:             "test-secret",
				VerifyExpiryHours:  24,
				ResetExpiryMinutes: 60,
				SessionExpiryHours: 168,
			},
		},
	}

	env.repo = &repository.Repository{
		User:     env.users,
		Role:     env.roles,
		Category: env.cats,
		Product:  env.products,
		Session:  env.sessions,
		CartItem: env.cart,
	}

	return env
}

func (e *testEnv) authService() AuthService {
	return NewAuthService(e.repo, e.config, e.mail, zap.NewNop())
}

func (e *testEnv) categoryService() CategoryService {
	return NewCategoryService(e.repo, zap.NewNop())
}

func (e *testEnv) productService() ProductService {
	return NewProductService(e.repo, zap.NewNop())
}

func (e *testEnv) cartService() CartService {
	return NewCartService(e.repo, zap.NewNop())
}
