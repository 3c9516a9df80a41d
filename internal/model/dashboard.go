package model

type ChannelStats struct {
	TotalVideos    int64 `db:"total_videos" json:"total_videos"`
	TotalLikes     int64 `db:"total_likes" json:"total_likes"`
	TotalComments  int64 `db:"total_comments" json:"total_comments"`
	TotalTweets    int64 `db:"total_tweets" json:"total_tweets"`
	TotalPlaylists int64 `db:"total_playlists" json:"total_playlists"`
}
