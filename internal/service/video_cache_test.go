package service_test

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/repository"
	"content-hub-api/internal/service"
	"content-hub-api/internal/util"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRedisVideoService(t *testing.T) (*service.VideoService, *MockVideoRepository) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cache := repository.NewCacheRepository(&config.RedisClient{Client: client}, 5*time.Minute)
	videoRepo := new(MockVideoRepository)
	return service.NewVideoService(videoRepo, cache, new(MockMediaStorage), 15*time.Minute), videoRepo
}

// Бен промахивается мимо кэша и читает строку из БД, в это время Ава удаляет видео.
// Заполнение кэша старой строкой не должно пережить инвалидацию.
func TestGetVideo_DeleteDuringCacheFill(t *testing.T) {
	videoService, videoRepo := newRedisVideoService(t)
	stored := &model.Video{UUID: "v1", OwnerUUID: "ava", IsPublished: true}

	videoRepo.On("GetByUUID", mock.Anything, "v1").Run(func(mock.Arguments) {
		require.NoError(t, videoService.DeleteVideo(contextWithUser("ava"), "v1"))
	}).Return(stored, nil).Once()
	videoRepo.On("Delete", mock.Anything, "v1", "ava").Return(stored, nil).Once()
	videoRepo.On("GetByUUID", mock.Anything, "v1").
		Return(nil, util.NotFoundOrForbidden("video not found")).Once()

	// первое чтение видит строку до удаления
	video, err := videoService.GetVideo(contextWithUser("ben"), "v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", video.UUID)

	_, err = videoService.GetVideo(contextWithUser("ben"), "v1")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)
	videoRepo.AssertExpectations(t)
}

// Снятие с публикации во время чтения: следующий запрос Бена идёт в БД и получает 404
func TestGetVideo_UnpublishDuringCacheFill(t *testing.T) {
	videoService, videoRepo := newRedisVideoService(t)
	published := &model.Video{UUID: "v1", OwnerUUID: "ava", IsPublished: true}
	hidden := &model.Video{UUID: "v1", OwnerUUID: "ava", IsPublished: false}

	videoRepo.On("GetByUUID", mock.Anything, "v1").Run(func(mock.Arguments) {
		_, err := videoService.TogglePublishStatus(contextWithUser("ava"), "v1")
		require.NoError(t, err)
	}).Return(published, nil).Once()
	videoRepo.On("TogglePublish", mock.Anything, "v1", "ava").Return(hidden, nil).Once()
	videoRepo.On("GetByUUID", mock.Anything, "v1").Return(hidden, nil)

	_, err := videoService.GetVideo(contextWithUser("ben"), "v1")
	require.NoError(t, err)

	_, err = videoService.GetVideo(contextWithUser("ben"), "v1")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)

	// владелец по-прежнему видит своё видео, теперь уже из кэша
	video, err := videoService.GetVideo(contextWithUser("ava"), "v1")
	require.NoError(t, err)
	assert.False(t, video.IsPublished)
	videoRepo.AssertNumberOfCalls(t, "GetByUUID", 2)
}
