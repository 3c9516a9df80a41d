package service

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"context"

	"github.com/google/uuid"
)

type TweetService struct {
	tweetRepository ports.TweetRepository
}

func NewTweetService(tweetRepository ports.TweetRepository) *TweetService {
	return &TweetService{tweetRepository: tweetRepository}
}

func (s *TweetService) CreateTweet(ctx context.Context, content string) (*model.Tweet, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	req := requestresponse.ContentRequest{Content: content}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.tweetRepository.Create(ctx, &model.Tweet{
		UUID:      uuid.New().String(),
		OwnerUUID: owner.UUID,
		Content:   req.Content,
	})
}

func (s *TweetService) ListMyTweets(ctx context.Context, cursor string, limit int) (*model.Page[model.Tweet], error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.tweetRepository.ListByOwner(ctx, owner.UUID, cursor, limit)
}

func (s *TweetService) ListUserTweets(ctx context.Context, userUUID, cursor string, limit int) (*model.Page[model.Tweet], error) {
	return s.tweetRepository.ListByOwner(ctx, userUUID, cursor, limit)
}

func (s *TweetService) UpdateTweet(ctx context.Context, tweetUUID, content string) (*model.Tweet, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	req := requestresponse.ContentRequest{Content: content}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.tweetRepository.Update(ctx, tweetUUID, owner.UUID, req.Content)
}

func (s *TweetService) DeleteTweet(ctx context.Context, tweetUUID string) error {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return err
	}

	_, err = s.tweetRepository.Delete(ctx, tweetUUID, owner.UUID)
	return err
}
