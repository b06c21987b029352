package usecase

import (
	"context"
	"testing"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/pkg/apperr"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the normalized name", func(t *testing.T) {
		env := newTestEnv()

		req := &request.CategoryRequest{Name: "  Electronics "}
		req.Normalize()

		resp, err := env.categoryService().CreateCategory(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "electronics", resp.Name)
	})

	t.Run("duplicate is rejected regardless of case", func(t *testing.T) {
		env := newTestEnv()

		first := &request.CategoryRequest{Name: "Electronics"}
		first.Normalize()
		_, err := env.categoryService().CreateCategory(ctx, first)
		require.NoError(t, err)

		second := &request.CategoryRequest{Name: "ELECTRONICS"}
		second.Normalize()
		_, err = env.categoryService().CreateCategory(ctx, second)
		assert.True(t, apperr.IsKind(err, apperr.KindDuplicate))
	})
}

func TestGetCategories(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()

	seedCategory(t, env, "electronics")
	seedCategory(t, env, "books")

	categories, err := env.categoryService().GetCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestGetCategoryByID(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.categoryService().GetCategoryByID(ctx, uuid.NewString())
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("invalid id", func(t *testing.T) {
		env := newTestEnv()

		_, err := env.categoryService().GetCategoryByID(ctx, "not-a-uuid")
		assert.True(t, apperr.IsKind(err, apperr.KindBadRequest))
	})
}
