package model

import (
	"time"

	"github.com/lib/pq"
)

type Playlist struct {
	UUID        string         `db:"uuid" json:"uuid"`
	OwnerUUID   string         `db:"owner_uuid" json:"owner_uuid"`
	Name        string         `db:"name" json:"name"`
	Description string         `db:"description" json:"description"`
	VideoUUIDs  pq.StringArray `db:"video_uuids" json:"videos"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

type PlaylistUpdate struct {
	Name        *string
	Description *string
}
