package requestresponse

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/util"
	"strings"
)

// PlaylistRequest : создание плейлиста
type PlaylistRequest struct {
	Name        string `json:"name" example:"Favourites"`
	Description string `json:"description" example:"Videos I keep rewatching"`
}

func (r *PlaylistRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	if r.Name == "" {
		return util.Validation("playlist name is required")
	}
	return nil
}

// UpdatePlaylistRequest : отсутствующие поля не меняются
type UpdatePlaylistRequest struct {
	Name        *string `json:"name" example:"Favourites"`
	Description *string `json:"description" example:"Updated description"`
}

func (r *UpdatePlaylistRequest) ToUpdate() (*model.PlaylistUpdate, error) {
	if r.Name == nil && r.Description == nil {
		return nil, util.Validation("nothing to update")
	}

	update := &model.PlaylistUpdate{}
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		if name == "" {
			return nil, util.Validation("playlist name must not be empty")
		}
		update.Name = &name
	}
	if r.Description != nil {
		description := strings.TrimSpace(*r.Description)
		update.Description = &description
	}
	return update, nil
}
