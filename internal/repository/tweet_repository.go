package repository

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

var tweetsTable = OwnedTable{
	Resource: "tweet",
	Name:     "tweets",
	Columns:  `uuid, owner_uuid, content, created_at, updated_at`,
}

type TweetRepository struct {
	*config.Database
}

func NewTweetRepository(database *config.Database) *TweetRepository {
	return &TweetRepository{database}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) (*model.Tweet, error) {
	query := `INSERT INTO tweets (uuid, owner_uuid, content) VALUES ($1, $2, $3) RETURNING ` + tweetsTable.Columns

	var created model.Tweet
	if err := sqlx.GetContext(ctx, r.DB, &created, query, tweet.UUID, tweet.OwnerUUID, tweet.Content); err != nil {
		return nil, dbError("[TweetRepo] ошибка вставки твита", err)
	}
	return &created, nil
}

func (r *TweetRepository) ListByOwner(ctx context.Context, ownerUUID, cursor string, limit int) (*model.Page[model.Tweet], error) {
	base := `SELECT ` + tweetsTable.Columns + ` FROM tweets WHERE owner_uuid = $1`
	return selectPage(ctx, r.DB, base, cursor, limit, func(t model.Tweet) (time.Time, string) {
		return t.CreatedAt, t.UUID
	}, ownerUUID)
}

func (r *TweetRepository) Update(ctx context.Context, uuid, ownerUUID, content string) (*model.Tweet, error) {
	return UpdateOwned[model.Tweet](ctx, r.DB, tweetsTable, uuid, ownerUUID, []Assignment{
		{Column: "content", Value: content},
	})
}

func (r *TweetRepository) Delete(ctx context.Context, uuid, ownerUUID string) (*model.Tweet, error) {
	return DeleteOwned[model.Tweet](ctx, r.DB, tweetsTable, uuid, ownerUUID)
}
