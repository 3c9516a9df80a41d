package service_test

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/security"
	"content-hub-api/internal/util"
	"context"
	"io"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
)

// ===== FAKES =====

// memoryUserRepository : хранилище пользователей в памяти.
// Условные обновления выполняются под мьютексом, как UPDATE ... WHERE в БД.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*model.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: map[string]*model.User{}}
}

func (r *memoryUserRepository) add(user *model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.UUID] = &copied
}

func (r *memoryUserRepository) refreshHash(uuid string) *string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.users[uuid].RefreshTokenHash
}

func (r *memoryUserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, util.Conflict("user with email or username already exists")
		}
	}
	copied := *user
	copied.CreatedAt = time.Now()
	r.users[user.UUID] = &copied
	result := copied
	return &result, nil
}

func (r *memoryUserRepository) FindByUUID(_ context.Context, uuid string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uuid]
	if !ok {
		return nil, util.NotFoundOrForbidden("user not found")
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) FindByUsernameOrEmail(_ context.Context, identifier string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == identifier || user.Email == identifier {
			copied := *user
			return &copied, nil
		}
	}
	return nil, util.NotFoundOrForbidden("user not found")
}

func (r *memoryUserRepository) SetRefreshToken(_ context.Context, uuid string, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uuid]
	if !ok {
		return util.NotFoundOrForbidden("user not found")
	}
	user.RefreshTokenHash = &tokenHash
	return nil
}

func (r *memoryUserRepository) ClearRefreshToken(_ context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[uuid]; ok {
		user.RefreshTokenHash = nil
	}
	return nil
}

func (r *memoryUserRepository) RotateRefreshToken(_ context.Context, uuid, oldHash, newHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uuid]
	if !ok || user.RefreshTokenHash == nil || *user.RefreshTokenHash != oldHash {
		return false, nil
	}
	user.RefreshTokenHash = &newHash
	return true, nil
}

func (r *memoryUserRepository) ReplacePassword(_ context.Context, uuid, oldHash, newHash string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uuid]
	if !ok || user.PasswordHash != oldHash {
		return false, nil
	}
	user.PasswordHash = newHash
	user.RefreshTokenHash = nil
	return true, nil
}

func (r *memoryUserRepository) UpdateAccount(_ context.Context, uuid, fullName, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.users {
		if id != uuid && existing.Email == email {
			return nil, util.Conflict("user with this email already exists")
		}
	}
	user, ok := r.users[uuid]
	if !ok {
		return nil, util.NotFoundOrForbidden("user not found")
	}
	user.FullName, user.Email = fullName, email
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) UpdateAvatar(_ context.Context, uuid, url string) (*model.User, error) {
	return r.updateImage(uuid, func(u *model.User) { u.AvatarURL = url })
}

func (r *memoryUserRepository) UpdateCoverImage(_ context.Context, uuid, url string) (*model.User, error) {
	return r.updateImage(uuid, func(u *model.User) { u.CoverImageURL = url })
}

func (r *memoryUserRepository) updateImage(uuid string, apply func(*model.User)) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[uuid]
	if !ok {
		return nil, util.NotFoundOrForbidden("user not found")
	}
	apply(user)
	copied := *user
	return &copied, nil
}

type likeKey struct {
	owner  string
	target model.LikeTargetType
	uuid   string
}

// memoryLikeRepository : лайки в памяти с уникальностью (owner, target).
// findBarrier позволяет выровнять параллельные переключения после чтения.
type memoryLikeRepository struct {
	mu          sync.Mutex
	likes       map[likeKey]*model.Like
	targets     map[string]bool
	findBarrier *sync.WaitGroup
}

func newMemoryLikeRepository(targets ...string) *memoryLikeRepository {
	known := map[string]bool{}
	for _, t := range targets {
		known[t] = true
	}
	return &memoryLikeRepository{likes: map[likeKey]*model.Like{}, targets: known}
}

func (r *memoryLikeRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.likes)
}

func (r *memoryLikeRepository) TargetExists(_ context.Context, _ string, _ model.LikeTargetType, targetUUID string) (bool, error) {
	return r.targets[targetUUID], nil
}

func (r *memoryLikeRepository) Find(_ context.Context, ownerUUID string, targetType model.LikeTargetType, targetUUID string) (*model.Like, error) {
	r.mu.Lock()
	like := r.likes[likeKey{ownerUUID, targetType, targetUUID}]
	r.mu.Unlock()

	if r.findBarrier != nil {
		r.findBarrier.Done()
		r.findBarrier.Wait()
	}

	if like == nil {
		return nil, nil
	}
	copied := *like
	return &copied, nil
}

func (r *memoryLikeRepository) InsertIfAbsent(_ context.Context, like *model.Like) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{like.OwnerUUID, like.TargetType, like.TargetUUID}
	if _, ok := r.likes[key]; ok {
		return false, nil
	}
	copied := *like
	r.likes[key] = &copied
	return true, nil
}

func (r *memoryLikeRepository) Delete(_ context.Context, uuid, ownerUUID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, like := range r.likes {
		if like.UUID == uuid && like.OwnerUUID == ownerUUID {
			delete(r.likes, key)
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryLikeRepository) ListLikedVideos(_ context.Context, _ string) ([]model.Video, error) {
	return []model.Video{}, nil
}

// ===== MOCKS =====

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	args := m.Called(ctx, video)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) GetByUUID(ctx context.Context, uuid string) (*model.Video, error) {
	args := m.Called(ctx, uuid)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) List(ctx context.Context, cursor string, limit int) (*model.Page[model.Video], error) {
	args := m.Called(ctx, cursor, limit)
	if p, ok := args.Get(0).(*model.Page[model.Video]); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) ListByOwner(ctx context.Context, ownerUUID, cursor string, limit int) (*model.Page[model.Video], error) {
	args := m.Called(ctx, ownerUUID, cursor, limit)
	if p, ok := args.Get(0).(*model.Page[model.Video]); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, uuid, ownerUUID string, update *model.VideoUpdate) (*model.Video, error) {
	args := m.Called(ctx, uuid, ownerUUID, update)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) TogglePublish(ctx context.Context, uuid, ownerUUID string) (*model.Video, error) {
	args := m.Called(ctx, uuid, ownerUUID)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, uuid, ownerUUID string) (*model.Video, error) {
	args := m.Called(ctx, uuid, ownerUUID)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockVideoCache struct {
	mock.Mock
}

func (m *MockVideoCache) VideoVersion(ctx context.Context, uuid string) (int64, error) {
	args := m.Called(ctx, uuid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoCache) SetVideo(ctx context.Context, video *model.Video, version int64) error {
	return m.Called(ctx, video, version).Error(0)
}

func (m *MockVideoCache) GetVideo(ctx context.Context, uuid string) (*model.Video, error) {
	args := m.Called(ctx, uuid)
	if v, ok := args.Get(0).(*model.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoCache) DeleteVideo(ctx context.Context, uuid string) error {
	return m.Called(ctx, uuid).Error(0)
}

type MockMediaStorage struct {
	mock.Mock
}

func (m *MockMediaStorage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, key, body, size, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockMediaStorage) PublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func (m *MockMediaStorage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) playlist(args mock.Arguments) (*model.Playlist, error) {
	if p, ok := args.Get(0).(*model.Playlist); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) (*model.Playlist, error) {
	return m.playlist(m.Called(ctx, playlist))
}

func (m *MockPlaylistRepository) GetByUUID(ctx context.Context, uuid string) (*model.Playlist, error) {
	return m.playlist(m.Called(ctx, uuid))
}

func (m *MockPlaylistRepository) ListByOwner(ctx context.Context, ownerUUID string) ([]model.Playlist, error) {
	args := m.Called(ctx, ownerUUID)
	if p, ok := args.Get(0).([]model.Playlist); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, uuid, ownerUUID string, update *model.PlaylistUpdate) (*model.Playlist, error) {
	return m.playlist(m.Called(ctx, uuid, ownerUUID, update))
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, uuid, ownerUUID string) (*model.Playlist, error) {
	return m.playlist(m.Called(ctx, uuid, ownerUUID))
}

func (m *MockPlaylistRepository) AddVideo(ctx context.Context, uuid, ownerUUID, videoUUID string) (*model.Playlist, error) {
	return m.playlist(m.Called(ctx, uuid, ownerUUID, videoUUID))
}

func (m *MockPlaylistRepository) RemoveVideo(ctx context.Context, uuid, ownerUUID, videoUUID string) (*model.Playlist, error) {
	return m.playlist(m.Called(ctx, uuid, ownerUUID, videoUUID))
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) comment(args mock.Arguments) (*model.Comment, error) {
	if c, ok := args.Get(0).(*model.Comment); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) (*model.Comment, error) {
	return m.comment(m.Called(ctx, comment))
}

func (m *MockCommentRepository) ListByVideo(ctx context.Context, requesterUUID, videoUUID, cursor string, limit int) (*model.Page[model.Comment], error) {
	args := m.Called(ctx, requesterUUID, videoUUID, cursor, limit)
	if p, ok := args.Get(0).(*model.Page[model.Comment]); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, uuid, ownerUUID, content string) (*model.Comment, error) {
	return m.comment(m.Called(ctx, uuid, ownerUUID, content))
}

func (m *MockCommentRepository) Delete(ctx context.Context, uuid, ownerUUID string) (*model.Comment, error) {
	return m.comment(m.Called(ctx, uuid, ownerUUID))
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) tweet(args mock.Arguments) (*model.Tweet, error) {
	if t, ok := args.Get(0).(*model.Tweet); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet *model.Tweet) (*model.Tweet, error) {
	return m.tweet(m.Called(ctx, tweet))
}

func (m *MockTweetRepository) ListByOwner(ctx context.Context, ownerUUID, cursor string, limit int) (*model.Page[model.Tweet], error) {
	args := m.Called(ctx, ownerUUID, cursor, limit)
	if p, ok := args.Get(0).(*model.Page[model.Tweet]); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTweetRepository) Update(ctx context.Context, uuid, ownerUUID, content string) (*model.Tweet, error) {
	return m.tweet(m.Called(ctx, uuid, ownerUUID, content))
}

func (m *MockTweetRepository) Delete(ctx context.Context, uuid, ownerUUID string) (*model.Tweet, error) {
	return m.tweet(m.Called(ctx, uuid, ownerUUID))
}

type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) ChannelStats(ctx context.Context, ownerUUID string) (*model.ChannelStats, error) {
	args := m.Called(ctx, ownerUUID)
	if s, ok := args.Get(0).(*model.ChannelStats); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// ===== HELPERS =====

func contextWithUser(uuid string) context.Context {
	return security.WithUser(context.Background(), &model.User{UUID: uuid, Username: uuid})
}
