package request

import "museum-chat/pkg/utils"

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// PageQuery is read from ?page=&per_page= on admin listings.
type PageQuery struct {
	Page    int `json:"page" validate:"min=1"`
	PerPage int `json:"per_page" validate:"min=1,max=100"`
}

func (p PageQuery) Limit() int {
	return utils.ClampPerPage(p.PerPage, defaultPerPage, maxPerPage)
}

func (p PageQuery) Offset() int {
	return utils.PageOffset(p.Page, p.Limit())
}
