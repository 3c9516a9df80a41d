package repository

import (
	"content-hub-api/internal/util"
	"errors"
	"log"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// dbError : логирует ошибку драйвера, клиенту уйдет только 500
func dbError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return util.Internal(message, err)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation
}
