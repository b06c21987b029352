package request

import "strings"

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=3"`
	Description *string `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  string  `json:"categoryId" validate:"required,uuid"`
}

func (r *ProductRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// ProductUpdateRequest is a partial patch; nil fields are left untouched.
type ProductUpdateRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=3"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

func (r *ProductUpdateRequest) Normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
}
