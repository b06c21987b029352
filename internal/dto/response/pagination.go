package response

import "ecommerce-backend/pkg/utils"

type PaginatedResponse[T any] struct {
	Data []T            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type PaginationMeta struct {
	TotalRecords    int64 `json:"totalRecords"`
	TotalPages      int   `json:"totalPages"`
	CurrentPage     int   `json:"currentPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
	Take            int   `json:"take"`
}

func NewPaginatedResponse[T any](data []T, page, take int, total int64) *PaginatedResponse[T] {
	totalPages := utils.CalculateTotalPages(total, take)

	return &PaginatedResponse[T]{
		Data: data,
		Meta: PaginationMeta{
			TotalRecords:    total,
			TotalPages:      totalPages,
			CurrentPage:     page,
			HasNextPage:     page < totalPages,
			HasPreviousPage: page > 1,
			Take:            take,
		},
	}
}
