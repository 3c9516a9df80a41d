package model

import "time"

type Video struct {
	UUID         string    `db:"uuid" json:"uuid"`
	OwnerUUID    string    `db:"owner_uuid" json:"owner_uuid"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	VideoURL     string    `db:"video_url" json:"video_url"`
	ThumbnailURL string    `db:"thumbnail_url" json:"thumbnail_url"`
	Duration     int       `db:"duration" json:"duration"`
	IsPublished  bool      `db:"is_published" json:"is_published"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// VideoUpdate : nil поля не меняются
type VideoUpdate struct {
	Title        *string
	Description  *string
	VideoURL     *string
	ThumbnailURL *string
}

// UploadTarget : pre-signed PUT URL для загрузки файла напрямую в хранилище
type UploadTarget struct {
	UploadURL string `json:"upload_url"`
	ObjectKey string `json:"object_key"`
	PublicURL string `json:"public_url"`
	ExpiresIn int    `json:"expires_in"`
}
