package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductListRequestOffset(t *testing.T) {
	req := DefaultProductListRequest()
	assert.Equal(t, 0, req.Offset())

	req.Page = 2
	assert.Equal(t, 10, req.Offset())

	req.Page = 3
	req.Take = 25
	assert.Equal(t, 50, req.Offset())

	req.Page = 0
	assert.Equal(t, 0, req.Offset())
}
