package request

import "strings"

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Description *string `json:"description"`
}

// Normalize trims and lower-cases the name before the uniqueness check, so
// category uniqueness is effectively case-insensitive.
func (r *CategoryRequest) Normalize() {
	r.Name = strings.ToLower(strings.TrimSpace(r.Name))
}
