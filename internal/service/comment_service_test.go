package service_test

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/service"
	"content-hub-api/internal/util"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment(t *testing.T) {
	comments := new(MockCommentRepository)
	commentService := service.NewCommentService(comments)

	comments.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Comment) bool {
		return c.OwnerUUID == "ben" && c.VideoUUID == "v1" && c.Content == "Nice" && c.UUID != ""
	})).Return(&model.Comment{UUID: "c1", OwnerUUID: "ben", VideoUUID: "v1", Content: "Nice"}, nil)

	comment, err := commentService.AddComment(contextWithUser("ben"), "v1", "  Nice ")
	require.NoError(t, err)
	assert.Equal(t, "c1", comment.UUID)

	_, err = commentService.AddComment(contextWithUser("ben"), "v1", "   ")
	assert.ErrorIs(t, err, util.ErrValidation)

	_, err = commentService.AddComment(context.Background(), "v1", "Nice")
	assert.ErrorIs(t, err, util.ErrUnauthorized)

	comments.AssertNumberOfCalls(t, "Create", 1)
}

// Бен пытается изменить и удалить комментарий Авы: запрос уходит с его uuid, ответ 404
func TestCommentService_ForeignOwner(t *testing.T) {
	comments := new(MockCommentRepository)
	commentService := service.NewCommentService(comments)

	comments.On("Update", mock.Anything, "c1", "ben", "Edited").
		Return(nil, util.NotFoundOrForbidden("comment not found"))
	comments.On("Delete", mock.Anything, "c1", "ben").
		Return(nil, util.NotFoundOrForbidden("comment not found"))

	_, err := commentService.UpdateComment(contextWithUser("ben"), "c1", "Edited")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)
	assert.Equal(t, "comment not found", util.PublicMessage(err))

	err = commentService.DeleteComment(contextWithUser("ben"), "c1")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)
	comments.AssertExpectations(t)
}

func TestCommentService_OwnerUpdatesAndDeletes(t *testing.T) {
	comments := new(MockCommentRepository)
	commentService := service.NewCommentService(comments)

	comments.On("Update", mock.Anything, "c1", "ava", "Edited").
		Return(&model.Comment{UUID: "c1", OwnerUUID: "ava", Content: "Edited"}, nil)
	comments.On("Delete", mock.Anything, "c1", "ava").
		Return(&model.Comment{UUID: "c1"}, nil)

	comment, err := commentService.UpdateComment(contextWithUser("ava"), "c1", " Edited ")
	require.NoError(t, err)
	assert.Equal(t, "Edited", comment.Content)

	require.NoError(t, commentService.DeleteComment(contextWithUser("ava"), "c1"))
	comments.AssertExpectations(t)
}

func TestCommentService_ListPassesRequester(t *testing.T) {
	comments := new(MockCommentRepository)
	commentService := service.NewCommentService(comments)

	comments.On("ListByVideo", mock.Anything, "ben", "v1", "", 20).
		Return(&model.Page[model.Comment]{Items: []model.Comment{}}, nil)

	page, err := commentService.ListVideoComments(contextWithUser("ben"), "v1", "", 20)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	comments.AssertExpectations(t)
}
