package service

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"content-hub-api/internal/util"
	"context"
	"log"

	"github.com/google/uuid"
)

type LikeService struct {
	likeRepository ports.LikeRepository
}

func NewLikeService(likeRepository ports.LikeRepository) *LikeService {
	return &LikeService{likeRepository: likeRepository}
}

// Toggle : читает текущее состояние и идемпотентно пишет противоположное.
//
// Вставка идет через ON CONFLICT DO NOTHING, удаление по uuid увиденного
// лайка, поэтому гонка двух переключений не создает дубликатов и не падает
// с ошибкой: проигравший запрос просто видит уже примененный результат.
func (s *LikeService) Toggle(ctx context.Context, targetType model.LikeTargetType, targetUUID string) (*model.ToggleResult, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if !targetType.Valid() {
		return nil, util.Validation("invalid like target")
	}

	exists, err := s.likeRepository.TargetExists(ctx, owner.UUID, targetType, targetUUID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.NotFoundOrForbidden(string(targetType) + " not found")
	}

	current, err := s.likeRepository.Find(ctx, owner.UUID, targetType, targetUUID)
	if err != nil {
		return nil, err
	}

	result := &model.ToggleResult{TargetType: targetType, TargetUUID: targetUUID}

	if current == nil {
		inserted, err := s.likeRepository.InsertIfAbsent(ctx, &model.Like{
			UUID:       uuid.New().String(),
			OwnerUUID:  owner.UUID,
			TargetType: targetType,
			TargetUUID: targetUUID,
		})
		if err != nil {
			return nil, err
		}
		if !inserted {
			log.Printf("[LikeService] лайк %s %s уже поставлен параллельным запросом", targetType, targetUUID)
		}
		result.State = model.ToggleAdded
		result.Liked = true
		return result, nil
	}

	if _, err := s.likeRepository.Delete(ctx, current.UUID, owner.UUID); err != nil {
		return nil, err
	}
	result.State = model.ToggleRemoved
	result.Liked = false
	return result, nil
}

func (s *LikeService) ListLikedVideos(ctx context.Context) ([]model.Video, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.likeRepository.ListLikedVideos(ctx, owner.UUID)
}
