package service

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/model/requestresponse"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/security"
	"content-hub-api/internal/util"
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

type VideoService struct {
	videoRepository ports.VideoRepository
	cache           ports.VideoCache
	storage         ports.MediaStorage
	presignTTL      time.Duration
}

func NewVideoService(
	videoRepository ports.VideoRepository,
	cache ports.VideoCache,
	storage ports.MediaStorage,
	presignTTL time.Duration,
) *VideoService {
	return &VideoService{
		videoRepository: videoRepository,
		cache:           cache,
		storage:         storage,
		presignTTL:      presignTTL,
	}
}

func (s *VideoService) ListVideos(ctx context.Context, cursor string, limit int) (*model.Page[model.Video], error) {
	return s.videoRepository.List(ctx, cursor, limit)
}

func (s *VideoService) PublishVideo(ctx context.Context, req *requestresponse.PublishVideoRequest) (*model.Video, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	video := &model.Video{
		UUID:         uuid.New().String(),
		OwnerUUID:    owner.UUID,
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Duration:     req.Duration,
		IsPublished:  true,
	}

	return s.videoRepository.Create(ctx, video)
}

// GetVideo : сначала Redis, затем БД.
// Неопубликованное видео видит только владелец.
func (s *VideoService) GetVideo(ctx context.Context, videoUUID string) (*model.Video, error) {
	requester, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	video, err := s.cache.GetVideo(ctx, videoUUID)
	if err != nil {
		log.Printf("[VideoService] ошибка чтения кэша: %v", err)
	}

	if video == nil {
		// версия читается до БД: конкурирующая мутация сделает заполнение недействительным
		version, versionErr := s.cache.VideoVersion(ctx, videoUUID)

		video, err = s.videoRepository.GetByUUID(ctx, videoUUID)
		if err != nil {
			return nil, err
		}

		if versionErr == nil {
			if err := s.cache.SetVideo(ctx, video, version); err != nil {
				log.Printf("[VideoService] ошибка кэширования видео: %v", err)
			}
		}
	}

	if !video.IsPublished && video.OwnerUUID != requester.UUID {
		return nil, util.NotFoundOrForbidden("video not found")
	}

	return video, nil
}

func (s *VideoService) UpdateVideo(ctx context.Context, videoUUID string, req *requestresponse.UpdateVideoRequest) (*model.Video, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	update, err := req.ToUpdate()
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepository.Update(ctx, videoUUID, owner.UUID, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, videoUUID)
	return video, nil
}

func (s *VideoService) DeleteVideo(ctx context.Context, videoUUID string) error {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.videoRepository.Delete(ctx, videoUUID, owner.UUID); err != nil {
		return err
	}

	s.invalidate(ctx, videoUUID)
	return nil
}

func (s *VideoService) TogglePublishStatus(ctx context.Context, videoUUID string) (*model.Video, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	video, err := s.videoRepository.TogglePublish(ctx, videoUUID, owner.UUID)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, videoUUID)
	return video, nil
}

// CreateUploadURL : pre-signed PUT URL, клиент грузит файл в хранилище сам
func (s *VideoService) CreateUploadURL(ctx context.Context, req *requestresponse.UploadURLRequest) (*model.UploadTarget, error) {
	owner, err := security.UserFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%ss/%s/%s%s", req.Kind, owner.UUID, uuid.New().String(), strings.ToLower(path.Ext(req.Filename)))
	uploadURL, err := s.storage.GeneratePresignedPutURL(ctx, key, s.presignTTL)
	if err != nil {
		return nil, util.Internal("[VideoService] не удалось сгенерировать ссылку для загрузки", err)
	}

	return &model.UploadTarget{
		UploadURL: uploadURL,
		ObjectKey: key,
		PublicURL: s.storage.PublicURL(key),
		ExpiresIn: int(s.presignTTL.Seconds()),
	}, nil
}

func (s *VideoService) invalidate(ctx context.Context, videoUUID string) {
	if err := s.cache.DeleteVideo(ctx, videoUUID); err != nil {
		log.Printf("[VideoService] ошибка удаления видео из кэша: %v", err)
	}
}
