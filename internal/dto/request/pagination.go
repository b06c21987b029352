package request

import "ecommerce-backend/pkg/utils"

// ProductListRequest carries the product listing query parameters. Defaults
// and sort-field restrictions mirror what the validate tags enforce.
type ProductListRequest struct {
	Page    int    `json:"page" validate:"min=1"`
	Take    int    `json:"take" validate:"min=1,max=100"`
	OrderBy string `json:"orderBy" validate:"oneof=name price"`
	Order   string `json:"order" validate:"oneof=ASC DESC"`
}

func DefaultProductListRequest() *ProductListRequest {
	return &ProductListRequest{
		Page:    1,
		Take:    10,
		OrderBy: "name",
		Order:   "ASC",
	}
}

func (p *ProductListRequest) Offset() int {
	return utils.CalculateOffset(p.Page, p.Take)
}
