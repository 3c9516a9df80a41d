package service_test

import (
	"content-hub-api/internal/model"
	"content-hub-api/internal/service"
	"content-hub-api/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTweetService_CreateTweet(t *testing.T) {
	tweets := new(MockTweetRepository)
	tweetService := service.NewTweetService(tweets)

	tweets.On("Create", mock.Anything, mock.MatchedBy(func(tw *model.Tweet) bool {
		return tw.OwnerUUID == "ava" && tw.Content == "Hello"
	})).Return(&model.Tweet{UUID: "t1", OwnerUUID: "ava", Content: "Hello"}, nil)

	tweet, err := tweetService.CreateTweet(contextWithUser("ava"), " Hello ")
	require.NoError(t, err)
	assert.Equal(t, "t1", tweet.UUID)

	_, err = tweetService.CreateTweet(contextWithUser("ava"), "")
	assert.ErrorIs(t, err, util.ErrValidation)
	tweets.AssertNumberOfCalls(t, "Create", 1)
}

func TestTweetService_ForeignOwner(t *testing.T) {
	tweets := new(MockTweetRepository)
	tweetService := service.NewTweetService(tweets)

	tweets.On("Update", mock.Anything, "t1", "ben", "Mine now").
		Return(nil, util.NotFoundOrForbidden("tweet not found"))
	tweets.On("Delete", mock.Anything, "t1", "ben").
		Return(nil, util.NotFoundOrForbidden("tweet not found"))

	_, err := tweetService.UpdateTweet(contextWithUser("ben"), "t1", "Mine now")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)
	assert.Equal(t, 404, util.StatusCode(err))

	err = tweetService.DeleteTweet(contextWithUser("ben"), "t1")
	assert.ErrorIs(t, err, util.ErrNotFoundOrForbidden)
	tweets.AssertExpectations(t)
}

func TestTweetService_Lists(t *testing.T) {
	tweets := new(MockTweetRepository)
	tweetService := service.NewTweetService(tweets)

	tweets.On("ListByOwner", mock.Anything, "ava", "", 10).
		Return(&model.Page[model.Tweet]{Items: []model.Tweet{{UUID: "t1"}}}, nil)
	tweets.On("ListByOwner", mock.Anything, "ben", "cursor", 5).
		Return(&model.Page[model.Tweet]{Items: []model.Tweet{}}, nil)

	mine, err := tweetService.ListMyTweets(contextWithUser("ava"), "", 10)
	require.NoError(t, err)
	assert.Len(t, mine.Items, 1)

	// чужая лента читается любым авторизованным пользователем
	theirs, err := tweetService.ListUserTweets(contextWithUser("ava"), "ben", "cursor", 5)
	require.NoError(t, err)
	assert.Empty(t, theirs.Items)
	tweets.AssertExpectations(t)
}
