package ports

import (
	"content-hub-api/internal/model"
	"context"
)

type TweetRepository interface {
	Create(ctx context.Context, tweet *model.Tweet) (*model.Tweet, error)
	ListByOwner(ctx context.Context, ownerUUID, cursor string, limit int) (*model.Page[model.Tweet], error)
	Update(ctx context.Context, uuid, ownerUUID, content string) (*model.Tweet, error)
	Delete(ctx context.Context, uuid, ownerUUID string) (*model.Tweet, error)
}

type TweetService interface {
	CreateTweet(ctx context.Context, content string) (*model.Tweet, error)
	ListMyTweets(ctx context.Context, cursor string, limit int) (*model.Page[model.Tweet], error)
	ListUserTweets(ctx context.Context, userUUID, cursor string, limit int) (*model.Page[model.Tweet], error)
	UpdateTweet(ctx context.Context, uuid, content string) (*model.Tweet, error)
	DeleteTweet(ctx context.Context, uuid string) error
}
