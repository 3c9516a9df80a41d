package repository

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// versionTTL : счётчик версии живёт дольше любой записи кэша и любого запроса
const versionTTL = 24 * time.Hour

var errStaleVideo = errors.New("версия видео изменилась")

// CacheRepository : read-through кэш видео.
// Каждая мутация увеличивает video:<uuid>:version и удаляет запись в одной транзакции.
// Заполнение после чтения из БД проходит только если версия не изменилась с момента
// начала чтения, поэтому устаревшая строка не может вернуться в кэш.
type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{client: rdb, ttl: ttl}
}

// VideoVersion : читать до похода в БД, результат передаётся в SetVideo
func (r *CacheRepository) VideoVersion(ctx context.Context, uuid string) (int64, error) {
	version, err := parseVersion(r.client.Client.Get(ctx, videoVersionKey(uuid)))
	if err != nil {
		return 0, util.LogError("[CacheRepo] ошибка чтения версии видео", err)
	}
	return version, nil
}

// SetVideo : условная запись под WATCH на ключ версии.
// Если видео изменилось после чтения версии, запись молча пропускается.
func (r *CacheRepository) SetVideo(ctx context.Context, video *model.Video, version int64) error {
	data, err := json.Marshal(video)
	if err != nil {
		return util.LogError("[CacheRepo] ошибка сериализации видео", err)
	}

	verKey := videoVersionKey(video.UUID)
	err = r.client.Client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := parseVersion(tx.Get(ctx, verKey))
		if err != nil {
			return err
		}
		if current != version {
			return errStaleVideo
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, cachedVideoKey(video.UUID), data, r.ttl)
			return nil
		})
		return err
	}, verKey)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errStaleVideo), errors.Is(err, redis.TxFailedErr):
		log.Printf("[CacheRepo] видео %s изменилось во время чтения, кэш не заполняется", video.UUID)
		return nil
	default:
		return util.LogError("[CacheRepo] ошибка сохранения видео в Redis", err)
	}
}

func (r *CacheRepository) GetVideo(ctx context.Context, uuid string) (*model.Video, error) {
	val, err := r.client.Client.Get(ctx, cachedVideoKey(uuid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("[CacheRepo] ошибка получения видео из Redis", err)
	}

	var video model.Video
	if err := json.Unmarshal(val, &video); err != nil {
		return nil, util.LogError("[CacheRepo] ошибка десериализации видео из кэша", err)
	}
	return &video, nil
}

// DeleteVideo : инвалидация после мутации. Счётчик версии остаётся как надгробие,
// так что удалённое видео не заполнится обратно незавершённым чтением.
func (r *CacheRepository) DeleteVideo(ctx context.Context, uuid string) error {
	verKey := videoVersionKey(uuid)
	_, err := r.client.Client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, verKey)
		pipe.Expire(ctx, verKey, versionTTL)
		pipe.Del(ctx, cachedVideoKey(uuid))
		return nil
	})
	if err != nil {
		return util.LogError("[CacheRepo] ошибка инвалидации видео в Redis", err)
	}
	return nil
}

func parseVersion(cmd *redis.StringCmd) (int64, error) {
	version, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func cachedVideoKey(uuid string) string {
	return fmt.Sprintf("video:%s", uuid)
}

func videoVersionKey(uuid string) string {
	return fmt.Sprintf("video:%s:version", uuid)
}
