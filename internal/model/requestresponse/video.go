package requestresponse

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"strings"
)

// PublishVideoRequest : метаданные публикуемого видео
type PublishVideoRequest struct {
	Title        string `json:"title" example:"My first video"`
	Description  string `json:"description" example:"Trip to the mountains"`
	VideoURL     string `json:"video_url" example:"https://cdn.example.com/videos/1.mp4"`
	ThumbnailURL string `json:"thumbnail_url" example:"https://cdn.example.com/thumbs/1.jpg"`
	Duration     int    `json:"duration" example:"125"`
}

func (r *PublishVideoRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.VideoURL = strings.TrimSpace(r.VideoURL)
	r.ThumbnailURL = strings.TrimSpace(r.ThumbnailURL)

	if r.Title == "" || r.Description == "" || r.VideoURL == "" {
		return util.Validation("title, description and video_url are required")
	}
	if r.Duration < 0 {
		return util.Validation("duration must not be negative")
	}
	return nil
}

// UpdateVideoRequest : отсутствующие поля не меняются
type UpdateVideoRequest struct {
	Title        *string `json:"title" example:"New title"`
	Description  *string `json:"description" example:"New description"`
	VideoURL     *string `json:"video_url" example:"https://cdn.example.com/videos/1.mp4"`
	ThumbnailURL *string `json:"thumbnail_url" example:"https://cdn.example.com/thumbs/1.jpg"`
}

func (r *UpdateVideoRequest) ToUpdate() (*model.VideoUpdate, error) {
	update := &model.VideoUpdate{}
	fields := []struct {
		name     string
		src      *string
		dst      **string
		required bool
	}{
		{"title", r.Title, &update.Title, true},
		{"description", r.Description, &update.Description, true},
		{"video_url", r.VideoURL, &update.VideoURL, true},
		{"thumbnail_url", r.ThumbnailURL, &update.ThumbnailURL, false},
	}

	changed := false
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		value := strings.TrimSpace(*f.src)
		if f.required && value == "" {
			return nil, util.Validation(f.name + " must not be empty")
		}
		*f.dst = &value
		changed = true
	}

	if !changed {
		return nil, util.Validation("nothing to update")
	}
	return update, nil
}

// UploadURLRequest : запрос pre-signed URL для загрузки файла видео или превью
type UploadURLRequest struct {
	Kind        string `json:"kind" example:"video"`
	Filename    string `json:"filename" example:"trip.mp4"`
	ContentType string `json:"content_type" example:"video/mp4"`
}

func (r *UploadURLRequest) Validate() error {
	if r.Kind != "video" && r.Kind != "thumbnail" {
		return util.Validation("kind must be 'video' or 'thumbnail'")
	}
	if strings.TrimSpace(r.Filename) == "" {
		return util.Validation("filename is required")
	}
	return nil
}
