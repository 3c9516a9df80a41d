package service_test

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/service"
	"content-hub-api/internal/util"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_Alternates(t *testing.T) {
	likes := newMemoryLikeRepository("v1")
	likeService := service.NewLikeService(likes)
	ctx := contextWithUser("ava")

	first, err := likeService.Toggle(ctx, model.LikeTargetVideo, "v1")
	require.NoError(t, err)
	assert.Equal(t, model.ToggleAdded, first.State)
	assert.True(t, first.Liked)
	assert.Equal(t, 1, likes.count())

	second, err := likeService.Toggle(ctx, model.LikeTargetVideo, "v1")
	require.NoError(t, err)
	assert.Equal(t, model.ToggleRemoved, second.State)
	assert.False(t, second.Liked)
	assert.Equal(t, 0, likes.count())

	third, err := likeService.Toggle(ctx, model.LikeTargetVideo, "v1")
	require.NoError(t, err)
	assert.Equal(t, model.ToggleAdded, third.State)
}

func TestToggle_LikesArePerUser(t *testing.T) {
	likes := newMemoryLikeRepository("v1")
	likeService := service.NewLikeService(likes)

	_, err := likeService.Toggle(contextWithUser("ava"), model.LikeTargetVideo, "v1")
	require.NoError(t, err)

	result, err := likeService.Toggle(contextWithUser("ben"), model.LikeTargetVideo, "v1")
	require.NoError(t, err)
	assert.Equal(t, model.ToggleAdded, result.State)
	assert.Equal(t, 2, likes.count())
}

func TestToggle_Errors(t *testing.T) {
	likeService := service.NewLikeService(newMemoryLikeRepository("v1"))

	_, err := likeService.Toggle(contextWithUser("ava"), model.LikeTargetVideo, "missing")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)
	assert.Equal(t, "video not found", util.PublicMessage(err))

	_, err = likeService.Toggle(contextWithUser("ava"), model.LikeTargetType("users"), "v1")
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = likeService.Toggle(context.Background(), model.LikeTargetVideo, "v1")
	assert.ErrorIs(t, err, util.ErrUnauthorized)
}

// Оба запроса видят «лайка нет» до того, как любой из них запишет:
// в итоге ровно один лайк и ни одной ошибки
func TestToggle_ConcurrentFromAbsent(t *testing.T) {
	likes := newMemoryLikeRepository("v1")
	barrier := &sync.WaitGroup{}
	barrier.Add(2)
	likes.findBarrier = barrier

	likeService := service.NewLikeService(likes)
	ctx := contextWithUser("ava")

	var wg sync.WaitGroup
	results := make([]*model.ToggleResult, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = likeService.Toggle(ctx, model.LikeTargetVideo, "v1")
		}(i)
	}
	wg.Wait()

	for i := 0; i < 2; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, model.ToggleAdded, results[i].State)
	}
	assert.Equal(t, 1, likes.count())
}

func TestToggle_ConcurrentFromPresent(t *testing.T) {
	likes := newMemoryLikeRepository("v1")
	likeService := service.NewLikeService(likes)
	ctx := contextWithUser("ava")

	_, err := likeService.Toggle(ctx, model.LikeTargetVideo, "v1")
	require.NoError(t, err)

	barrier := &sync.WaitGroup{}
	barrier.Add(2)
	likes.findBarrier = barrier

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = likeService.Toggle(ctx, model.LikeTargetVideo, "v1")
		}(i)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 0, likes.count())
}
