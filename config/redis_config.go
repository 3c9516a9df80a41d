package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient struct {
	Client *redis.Client
}

func NewRedisClient(cfg *RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ошибка пинга Redis: %w", err)
	}

	log.Println("Подключение к Redis успешно выполнено")
	return &RedisClient{Client: client}, nil
}

func (r *RedisClient) PingContext(ctx context.Context) error {
	return r.Client.Ping(ctx).Err()
}

func (r *RedisClient) Close() error {
	if err := r.Client.Close(); err != nil {
		return fmt.Errorf("ошибка закрытия соединения с Redis: %w", err)
	}
	return nil
}
