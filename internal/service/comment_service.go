package service

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"context"

	"github.com/google/uuid"
)

type CommentService struct {
	commentRepository ports.CommentRepository
}

func NewCommentService(commentRepository ports.CommentRepository) *CommentService {
	return &CommentService{commentRepository: commentRepository}
}

func (s *CommentService) ListVideoComments(ctx context.Context, videoUUID, cursor string, limit int) (*model.Page[model.Comment], error) {
	requester, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.commentRepository.ListByVideo(ctx, requester.UUID, videoUUID, cursor, limit)
}

func (s *CommentService) AddComment(ctx context.Context, videoUUID, content string) (*model.Comment, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	req := requestresponse.ContentRequest{Content: content}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.commentRepository.Create(ctx, &model.Comment{
		UUID:      uuid.New().String(),
		OwnerUUID: owner.UUID,
		VideoUUID: videoUUID,
		Content:   req.Content,
	})
}

func (s *CommentService) UpdateComment(ctx context.Context, commentUUID, content string) (*model.Comment, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	req := requestresponse.ContentRequest{Content: content}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return s.commentRepository.Update(ctx, commentUUID, owner.UUID, req.Content)
}

func (s *CommentService) DeleteComment(ctx context.Context, commentUUID string) error {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return err
	}

	_, err = s.commentRepository.Delete(ctx, commentUUID, owner.UUID)
	return err
}
