package repository

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeRepository_TargetExists(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewLikeRepository(database)

	mock.ExpectQuery(`(?s)SELECT EXISTS \(SELECT 1 FROM comments c JOIN videos v ON v.uuid = c.video_uuid\s+WHERE c.uuid = \$1 AND \(v.is_published OR v.owner_uuid = \$2\)\)`).
		WithArgs("c-1", avaUUID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM tweets WHERE uuid = \$1\)`).
		WithArgs("t-1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.TargetExists(context.Background(), avaUUID, model.LikeTargetComment, "c-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.TargetExists(context.Background(), avaUUID, model.LikeTargetTweet, "t-1")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.TargetExists(context.Background(), avaUUID, model.LikeTargetType("users"), "c-1")
	assert.True(t, errors.Is(err, util.ErrValidation))
}

// Чужое неопубликованное видео для лайка не существует
func TestLikeRepository_TargetExists_UnpublishedVideo(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewLikeRepository(database)

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM videos v WHERE v.uuid = \$1 AND \(v.is_published OR v.owner_uuid = \$2\)\)`).
		WithArgs(videoUUID, benUUID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err := repo.TargetExists(context.Background(), benUUID, model.LikeTargetVideo, videoUUID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLikeRepository_FindAbsent(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewLikeRepository(database)

	mock.ExpectQuery(`FROM likes WHERE owner_uuid = \$1 AND target_type = \$2 AND target_uuid = \$3`).
		WithArgs(avaUUID, model.LikeTargetVideo, videoUUID).
		WillReturnError(sql.ErrNoRows)

	like, err := repo.Find(context.Background(), avaUUID, model.LikeTargetVideo, videoUUID)
	require.NoError(t, err)
	assert.Nil(t, like)
}

func TestLikeRepository_FindPresent(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewLikeRepository(database)

	mock.ExpectQuery(`FROM likes WHERE owner_uuid = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"uuid", "owner_uuid", "target_type", "target_uuid", "created_at"}).
			AddRow("l-1", avaUUID, "video", videoUUID, time.Now()))

	like, err := repo.Find(context.Background(), avaUUID, model.LikeTargetVideo, videoUUID)
	require.NoError(t, err)
	require.NotNil(t, like)
	assert.Equal(t, model.LikeTargetVideo, like.TargetType)
}

func TestLikeRepository_InsertIfAbsent(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewLikeRepository(database)

	like := &model.Like{UUID: "l-1", OwnerUUID: avaUUID, TargetType: model.LikeTargetVideo, TargetUUID: videoUUID}

	mock.ExpectExec(`(?s)INSERT INTO likes .* ON CONFLICT ON CONSTRAINT likes_owner_target_key DO NOTHING`).
		WithArgs("l-1", avaUUID, model.LikeTargetVideo, videoUUID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO likes`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	inserted, err := repo.InsertIfAbsent(context.Background(), like)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = repo.InsertIfAbsent(context.Background(), like)
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestLikeRepository_DeleteAlreadyGone(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewLikeRepository(database)

	mock.ExpectQuery(`DELETE FROM likes WHERE uuid = \$1 AND owner_uuid = \$2`).
		WithArgs("l-1", avaUUID).
		WillReturnError(sql.ErrNoRows)

	deleted, err := repo.Delete(context.Background(), "l-1", avaUUID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDashboardRepository_ChannelStats(t *testing.T) {
	database, mock := newMockDatabase(t)
	repo := NewDashboardRepository(database)

	mock.ExpectQuery(`(?s)SELECT.*AS total_videos.*AS total_playlists`).
		WithArgs(avaUUID).
		WillReturnRows(sqlmock.NewRows([]string{"total_videos", "total_likes", "total_comments", "total_tweets", "total_playlists"}).
			AddRow(3, 10, 4, 2, 1))

	stats, err := repo.ChannelStats(context.Background(), avaUUID)
	require.NoError(t, err)
	assert.Equal(t, model.ChannelStats{TotalVideos: 3, TotalLikes: 10, TotalComments: 4, TotalTweets: 2, TotalPlaylists: 1}, *stats)
}
