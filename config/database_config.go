package config

import (
	"content-hub-api/internal/migrations"
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

type Database struct {
	*sqlx.DB
}

func NewDatabaseConnection(dbDriver string, dbConnectionStr string) (*Database, error) {
	database, err := sqlx.Connect(dbDriver, dbConnectionStr)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к БД: %w", err)
	}

	if err := database.Ping(); err != nil {
		return nil, fmt.Errorf("ошибка пинга БД: %w", err)
	}

	log.Println("Подключение к БД успешно выполнено")
	return &Database{
		database,
	}, nil
}

// Migrate : накатывает встроенные в бинарник миграции через goose
func (db *Database) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("ошибка выбора диалекта goose: %w", err)
	}

	if err := goose.UpContext(ctx, db.DB.DB, "."); err != nil {
		return fmt.Errorf("ошибка применения миграций: %w", err)
	}

	log.Println("Миграции успешно применены")
	return nil
}

func (db *Database) Close() error {
	err := db.DB.Close()
	if err != nil {
		return fmt.Errorf("ошибка закрытия соединения с БД: %w", err)
	}

	return nil
}
