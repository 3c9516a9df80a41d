package repository

import (
	"content-hub-api/internal/util"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// OwnedTable : таблица ресурса, у которого есть владелец.
// Колонки uuid и owner_uuid обязательны для всех таких таблиц.
type OwnedTable struct {
	Resource string
	Name     string
	Columns  string
}

// Assignment : одно присваивание в SET.
// Если задан Expr, он подставляется как есть, иначе Value уходит параметром.
type Assignment struct {
	Column string
	Value  interface{}
	Expr   string
}

// GetOwned : выборка ресурса только если requester его владелец
func GetOwned[T any](ctx context.Context, exec sqlx.ExtContext, table OwnedTable, uuid, ownerUUID string) (*T, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE uuid = $1 AND owner_uuid = $2`, table.Columns, table.Name)

	var item T
	if err := sqlx.GetContext(ctx, exec, &item, query, uuid, ownerUUID); err != nil {
		return nil, ownedError(table, "не удалось получить", err)
	}
	return &item, nil
}

// UpdateOwned : один UPDATE с фильтром (uuid, owner_uuid).
// Нет строки = нет ресурса или он чужой, наружу это один и тот же NotFoundOrForbidden.
func UpdateOwned[T any](ctx context.Context, exec sqlx.ExtContext, table OwnedTable, uuid, ownerUUID string, assignments []Assignment) (*T, error) {
	if len(assignments) == 0 {
		return GetOwned[T](ctx, exec, table, uuid, ownerUUID)
	}

	args := []interface{}{uuid, ownerUUID}
	set := make([]string, 0, len(assignments)+1)
	for _, a := range assignments {
		if a.Expr != "" {
			set = append(set, fmt.Sprintf("%s = %s", a.Column, a.Expr))
			continue
		}
		args = append(args, a.Value)
		set = append(set, fmt.Sprintf("%s = $%d", a.Column, len(args)))
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE uuid = $1 AND owner_uuid = $2 RETURNING %s`,
		table.Name, strings.Join(set, ", "), table.Columns)

	var item T
	if err := sqlx.GetContext(ctx, exec, &item, query, args...); err != nil {
		return nil, ownedError(table, "не удалось обновить", err)
	}
	return &item, nil
}

// DeleteOwned : удаляет и возвращает удаленную строку
func DeleteOwned[T any](ctx context.Context, exec sqlx.ExtContext, table OwnedTable, uuid, ownerUUID string) (*T, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE uuid = $1 AND owner_uuid = $2 RETURNING %s`, table.Name, table.Columns)

	var item T
	if err := sqlx.GetContext(ctx, exec, &item, query, uuid, ownerUUID); err != nil {
		return nil, ownedError(table, "не удалось удалить", err)
	}
	return &item, nil
}

func ownedError(table OwnedTable, action string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return util.NotFoundOrForbidden(table.Resource + " not found")
	}
	return dbError(fmt.Sprintf("[%s] %s %s", table.Name, action, table.Resource), err)
}
