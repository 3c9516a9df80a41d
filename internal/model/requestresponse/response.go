package requestresponse

// Response : общий конверт успешного ответа
type Response struct {
	Status  int         `json:"status" example:"200"`
	Data    interface{} `json:"data"`
	Message string      `json:"message" example:"Success"`
}

// ErrorResponse : конверт ошибки, status совпадает с HTTP статусом
type ErrorResponse struct {
	Status  int    `json:"status" example:"404"`
	Message string `json:"message" example:"video not found"`
}

// ListResponse : данные для постраничных списков
type ListResponse struct {
	Items      interface{} `json:"items"`
	NextCursor string      `json:"next_cursor,omitempty" example:"2025-08-23T12:34:56.123456Z|7f1c..."`
}
