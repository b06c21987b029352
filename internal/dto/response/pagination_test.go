package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponse(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		resp := NewPaginatedResponse(make([]int, 10), 2, 10, 25)

		assert.Equal(t, int64(25), resp.Meta.TotalRecords)
		assert.Equal(t, 3, resp.Meta.TotalPages)
		assert.Equal(t, 2, resp.Meta.CurrentPage)
		assert.True(t, resp.Meta.HasNextPage)
		assert.True(t, resp.Meta.HasPreviousPage)
	})

	t.Run("first page", func(t *testing.T) {
		resp := NewPaginatedResponse(make([]int, 10), 1, 10, 25)

		assert.True(t, resp.Meta.HasNextPage)
		assert.False(t, resp.Meta.HasPreviousPage)
	})

	t.Run("last page", func(t *testing.T) {
		resp := NewPaginatedResponse(make([]int, 5), 3, 10, 25)

		assert.False(t, resp.Meta.HasNextPage)
		assert.True(t, resp.Meta.HasPreviousPage)
	})

	t.Run("empty result", func(t *testing.T) {
		resp := NewPaginatedResponse([]int{}, 1, 10, 0)

		assert.Equal(t, 0, resp.Meta.TotalPages)
		assert.False(t, resp.Meta.HasNextPage)
		assert.False(t, resp.Meta.HasPreviousPage)
	})
}
