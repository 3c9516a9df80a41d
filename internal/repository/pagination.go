package repository

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const cursorSeparator = "|"

// cursor : created_at и uuid последней строки предыдущей страницы.
// uuid нужен, чтобы строки с одинаковым created_at не терялись.
type cursor struct {
	CreatedAt *time.Time
	UUID      string
}

func parseCursor(raw string) (cursor, error) {
	if raw == "" {
		return cursor{}, nil
	}

	ts, id, ok := strings.Cut(raw, cursorSeparator)
	if !ok {
		return cursor{}, util.Validation("invalid cursor")
	}
	if _, err := uuid.Parse(id); err != nil {
		return cursor{}, util.Validation("invalid cursor")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return cursor{}, util.Validation("invalid cursor")
	}

	return cursor{CreatedAt: &createdAt, UUID: id}, nil
}

func makeCursor(createdAt time.Time, id string) string {
	return createdAt.UTC().Format(time.RFC3339Nano) + cursorSeparator + id
}

// keysetQuery : дописывает к запросу с WHERE условие курсора, сортировку и LIMIT limit+1
func keysetQuery(base string, c cursor, limit int, args ...interface{}) (string, []interface{}) {
	var b strings.Builder
	b.WriteString(base)

	if c.CreatedAt != nil {
		args = append(args, *c.CreatedAt, c.UUID)
		fmt.Fprintf(&b, " AND (created_at, uuid) < ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit+1)
	fmt.Fprintf(&b, " ORDER BY created_at DESC, uuid DESC LIMIT $%d", len(args))

	return b.String(), args
}

// trimPage : из выборки limit+1 строк отрезает лишнюю и строит курсор
func trimPage[T any](items []T, limit int, key func(T) (time.Time, string)) ([]T, string) {
	if len(items) <= limit {
		return items, ""
	}
	items = items[:limit]
	createdAt, id := key(items[len(items)-1])
	return items, makeCursor(createdAt, id)
}

// selectPage : одна страница выборки, отсортированной от новых к старым
func selectPage[T any](ctx context.Context, exec sqlx.QueryerContext, base, rawCursor string, limit int,
	key func(T) (time.Time, string), args ...interface{}) (*model.Page[T], error) {
	c, err := parseCursor(rawCursor)
	if err != nil {
		return nil, err
	}

	query, args := keysetQuery(base, c, limit, args...)

	items := make([]T, 0, limit+1)
	if err := sqlx.SelectContext(ctx, exec, &items, query, args...); err != nil {
		return nil, dbError("[Pagination] не удалось получить страницу", err)
	}

	items, next := trimPage(items, limit, key)
	return &model.Page[T]{Items: items, NextCursor: next}, nil
}
