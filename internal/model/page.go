package model

// Page : страница cursor-based пагинации.
// NextCursor пустой, если следующей страницы нет.
type Page[T any] struct {
	Items      []T    `json:"items"`
	NextCursor string `json:"next_cursor,omitempty"`
}
