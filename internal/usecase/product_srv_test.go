package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCategory(t *testing.T, env *testEnv, name string) *entity.ProductCategory {
	t.Helper()

	now := time.Now()
	category := &entity.ProductCategory{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name: name,
	}
	require.NoError(t, env.cats.Create(context.Background(), category))
	return category
}

func TestGetProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("middle page of 25 records", func(t *testing.T) {
		env := newTestEnv()
		for i := 0; i < 25; i++ {
			seedProduct(t, env, fmt.Sprintf("product-%02d", i), float64(i+1))
		}

		req := &request.ProductListRequest{Page: 2, Take: 10, OrderBy: "name", Order: "ASC"}
		resp, err := env.productService().GetProducts(ctx, req)
		require.NoError(t, err)

		assert.Len(t, resp.Data, 10)
		assert.Equal(t, int64(25), resp.Meta.TotalRecords)
		assert.Equal(t, 3, resp.Meta.TotalPages)
		assert.Equal(t, 2, resp.Meta.CurrentPage)
		assert.True(t, resp.Meta.HasNextPage)
		assert.True(t, resp.Meta.HasPreviousPage)
		assert.Equal(t, "product-10", resp.Data[0].Name)
	})

	t.Run("orders by price descending", func(t *testing.T) {
		env := newTestEnv()
		seedProduct(t, env, "cheap", 5)
		seedProduct(t, env, "dear", 50)

		req := &request.ProductListRequest{Page: 1, Take: 10, OrderBy: "price", Order: "DESC"}
		resp, err := env.productService().GetProducts(ctx, req)
		require.NoError(t, err)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "dear", resp.Data[0].Name)
	})

	t.Run("soft-deleted products are excluded", func(t *testing.T) {
		env := newTestEnv()
		keep := seedProduct(t, env, "keep", 10)
		gone := seedProduct(t, env, "gone", 20)
		require.NoError(t, env.productService().DeleteProduct(ctx, gone.ID.String()))

		resp, err := env.productService().GetProducts(ctx, request.DefaultProductListRequest())
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, keep.ID, resp.Data[0].ID)
		assert.Equal(t, int64(1), resp.Meta.TotalRecords)
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := context.Background()

	t.Run("soft-deleted product is not found", func(t *testing.T) {
		env := newTestEnv()
		product := seedProduct(t, env, "keyboard", 45)
		require.NoError(t, env.productService().DeleteProduct(ctx, product.ID.String()))

		_, err := env.productService().GetProductByID(ctx, product.ID.String())
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.productService().GetProductByID(ctx, "not-a-uuid")
		assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	})
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("creates under an existing category", func(t *testing.T) {
		env := newTestEnv()
		category := seedCategory(t, env, "electronics")
		adminID := uuid.New()

		resp, err := env.productService().CreateProduct(ctx, &request.ProductRequest{
			Name:       "keyboard",
			Price:      45,
			Stock:      10,
			CategoryID: category.ID.String(),
		}, adminID)
		require.NoError(t, err)
		assert.Equal(t, "keyboard", resp.Name)
		require.NotNil(t, resp.Category)
		assert.Equal(t, category.ID, resp.Category.ID)

		stored, err := env.products.FindByID(ctx, resp.ID)
		require.NoError(t, err)
		assert.Equal(t, adminID, stored.CreatedByID)
	})

	t.Run("unknown category", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.productService().CreateProduct(ctx, &request.ProductRequest{
			Name:       "keyboard",
			Price:      45,
			Stock:      10,
			CategoryID: uuid.NewString(),
		}, uuid.New())
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("patches only provided fields", func(t *testing.T) {
		env := newTestEnv()
		product := seedProduct(t, env, "keyboard", 45)

		newPrice := 39.99
		resp, err := env.productService().UpdateProduct(ctx, product.ID.String(), &request.ProductUpdateRequest{
			Price: &newPrice,
		})
		require.NoError(t, err)
		assert.Equal(t, newPrice, resp.Price)
		assert.Equal(t, product.Name, resp.Name)
		assert.Equal(t, product.Stock, resp.Stock)
	})

	t.Run("soft-deleted product is not found", func(t *testing.T) {
		env := newTestEnv()
		product := seedProduct(t, env, "keyboard", 45)
		require.NoError(t, env.productService().DeleteProduct(ctx, product.ID.String()))

		name := "renamed"
		_, err := env.productService().UpdateProduct(ctx, product.ID.String(), &request.ProductUpdateRequest{
			Name: &name,
		})
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("second delete is rejected", func(t *testing.T) {
		env := newTestEnv()
		product := seedProduct(t, env, "keyboard", 45)

		require.NoError(t, env.productService().DeleteProduct(ctx, product.ID.String()))

		err := env.productService().DeleteProduct(ctx, product.ID.String())
		assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	})

	t.Run("unknown product", func(t *testing.T) {
		env := newTestEnv()

		err := env.productService().DeleteProduct(ctx, uuid.NewString())
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}
