package requestresponse

import (
	"content-hub-api/internal/util"
	"strings"
)

// ContentRequest : тело для комментариев и твитов
type ContentRequest struct {
	Content string `json:"content" example:"Great video!"`
}

func (r *ContentRequest) Validate() error {
	r.Content = strings.TrimSpace(r.Content)
	if r.Content == "" {
		return util.Validation("content is required")
	}
	return nil
}
