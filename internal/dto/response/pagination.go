package response

import "museum-chat/pkg/utils"

// Page is one page of an admin listing. Items is never null in JSON.
type Page[T any] struct {
	Items []T      `json:"items"`
	Meta  PageMeta `json:"meta"`
}

type PageMeta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

func NewPage[T any](items []T, page, perPage int, total int64) *Page[T] {
	if items == nil {
		items = []T{}
	}
	if page < 1 {
		page = 1
	}

	pages := utils.PageCount(total, perPage)
	return &Page[T]{
		Items: items,
		Meta: PageMeta{
			Page:       page,
			PerPage:    perPage,
			Total:      total,
			TotalPages: pages,
			HasNext:    page < pages,
		},
	}
}
