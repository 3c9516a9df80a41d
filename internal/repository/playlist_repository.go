package repository

import (
	"content-hub-api/config"
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var playlistsTable = OwnedTable{
	Resource: "playlist",
	Name:     "playlists",
	Columns:  `uuid, owner_uuid, name, description, video_uuids, created_at, updated_at`,
}

type PlaylistRepository struct {
	*config.Database
}

func NewPlaylistRepository(database *config.Database) *PlaylistRepository {
	return &PlaylistRepository{database}
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) (*model.Playlist, error) {
	query := `
	INSERT INTO playlists (uuid, owner_uuid, name, description)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + playlistsTable.Columns

	var created model.Playlist
	err := sqlx.GetContext(ctx, r.DB, &created, query,
		playlist.UUID,
		playlist.OwnerUUID,
		playlist.Name,
		playlist.Description,
	)
	if err != nil {
		return nil, dbError("[PlaylistRepo] ошибка вставки плейлиста", err)
	}
	return &created, nil
}

func (r *PlaylistRepository) GetByUUID(ctx context.Context, uuid string) (*model.Playlist, error) {
	query := `SELECT ` + playlistsTable.Columns + ` FROM playlists WHERE uuid = $1`

	var playlist model.Playlist
	if err := sqlx.GetContext(ctx, r.DB, &playlist, query, uuid); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, util.NotFoundOrForbidden("playlist not found")
		}
		return nil, dbError("[PlaylistRepo] не удалось получить плейлист", err)
	}
	return &playlist, nil
}

func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerUUID string) ([]model.Playlist, error) {
	query := `SELECT ` + playlistsTable.Columns + ` FROM playlists WHERE owner_uuid = $1 ORDER BY created_at DESC, uuid DESC`

	playlists := []model.Playlist{}
	if err := sqlx.SelectContext(ctx, r.DB, &playlists, query, ownerUUID); err != nil {
		return nil, dbError("[PlaylistRepo] не удалось получить плейлисты", err)
	}
	return playlists, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, uuid, ownerUUID string, update *model.PlaylistUpdate) (*model.Playlist, error) {
	var assignments []Assignment
	if update.Name != nil {
		assignments = append(assignments, Assignment{Column: "name", Value: *update.Name})
	}
	if update.Description != nil {
		assignments = append(assignments, Assignment{Column: "description", Value: *update.Description})
	}
	return UpdateOwned[model.Playlist](ctx, r.DB, playlistsTable, uuid, ownerUUID, assignments)
}

func (r *PlaylistRepository) Delete(ctx context.Context, uuid, ownerUUID string) (*model.Playlist, error) {
	return DeleteOwned[model.Playlist](ctx, r.DB, playlistsTable, uuid, ownerUUID)
}

// AddVideo : добавляет видео одним UPDATE.
// Если строка не обновилась, по отдельным проверкам выясняется причина.
func (r *PlaylistRepository) AddVideo(ctx context.Context, uuid, ownerUUID, videoUUID string) (*model.Playlist, error) {
	query := `
		UPDATE playlists
		SET video_uuids = array_append(video_uuids, $3::text), updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2
			AND NOT ($3::text = ANY(video_uuids))
			AND EXISTS (SELECT 1 FROM videos WHERE uuid = $3::uuid)
		RETURNING ` + playlistsTable.Columns

	var playlist model.Playlist
	err := sqlx.GetContext(ctx, r.DB, &playlist, query, uuid, ownerUUID, videoUUID)
	if err == nil {
		return &playlist, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, dbError("[PlaylistRepo] не удалось добавить видео в плейлист", err)
	}

	if _, err := GetOwned[model.Playlist](ctx, r.DB, playlistsTable, uuid, ownerUUID); err != nil {
		return nil, err
	}

	exists, err := r.videoExists(ctx, videoUUID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, util.NotFoundOrForbidden("video not found")
	}
	return nil, util.Conflict("video already exists in the playlist")
}

func (r *PlaylistRepository) RemoveVideo(ctx context.Context, uuid, ownerUUID, videoUUID string) (*model.Playlist, error) {
	query := `
		UPDATE playlists
		SET video_uuids = array_remove(video_uuids, $3::text), updated_at = NOW()
		WHERE uuid = $1 AND owner_uuid = $2 AND $3::text = ANY(video_uuids)
		RETURNING ` + playlistsTable.Columns

	var playlist model.Playlist
	err := sqlx.GetContext(ctx, r.DB, &playlist, query, uuid, ownerUUID, videoUUID)
	if err == nil {
		return &playlist, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, dbError("[PlaylistRepo] не удалось удалить видео из плейлиста", err)
	}

	if _, err := GetOwned[model.Playlist](ctx, r.DB, playlistsTable, uuid, ownerUUID); err != nil {
		return nil, err
	}
	return nil, util.NotFoundOrForbidden("video not found in the playlist")
}

func (r *PlaylistRepository) videoExists(ctx context.Context, videoUUID string) (bool, error) {
	var exists bool
	if err := r.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM videos WHERE uuid = $1)`, videoUUID); err != nil {
		return false, dbError("[PlaylistRepo] не удалось проверить видео", err)
	}
	return exists, nil
}
