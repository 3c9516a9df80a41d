package model

import "time"

type LikeTargetType string

const (
	LikeTargetVideo   LikeTargetType = "video"
	LikeTargetComment LikeTargetType = "comment"
	LikeTargetTweet   LikeTargetType = "tweet"
)

func (t LikeTargetType) Valid() bool {
	switch t {
	case LikeTargetVideo, LikeTargetComment, LikeTargetTweet:
		return true
	}
	return false
}

// Like : не более одного на пару (владелец, цель)
type Like struct {
	UUID       string         `db:"uuid" json:"uuid"`
	OwnerUUID  string         `db:"owner_uuid" json:"owner_uuid"`
	TargetType LikeTargetType `db:"target_type" json:"target_type"`
	TargetUUID string         `db:"target_uuid" json:"target_uuid"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
}

type ToggleState string

const (
	ToggleAdded   ToggleState = "added"
	ToggleRemoved ToggleState = "removed"
)

type ToggleResult struct {
	TargetType LikeTargetType `json:"target_type"`
	TargetUUID string         `json:"target_uuid"`
	State      ToggleState    `json:"state"`
	Liked      bool           `json:"liked"`
}
