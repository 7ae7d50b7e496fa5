package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
)

type fakeRepo struct {
	mu     sync.Mutex
	users  map[int64]bool
	tweets map[int64]*model.Tweet
	seq    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  map[int64]bool{},
		tweets: map[int64]*model.Tweet{},
	}
}

func (f *fakeRepo) IsUserExist(_ context.Context, userId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[userId], nil
}

func (f *fakeRepo) CreateTweet(_ context.Context, tweet *model.Tweet) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	tweet.CreatedAt = fmt.Sprintf("%020d", f.seq)
	f.tweets[tweet.TweetId] = tweet
	return nil
}

func (f *fakeRepo) GetTweet(_ context.Context, tweetId int64) (*model.Tweet, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tweet, ok := f.tweets[tweetId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tweet, nil
}

func (f *fakeRepo) UpdateTweet(_ context.Context, tweetId int64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if tweet, ok := f.tweets[tweetId]; ok {
		tweet.Content = content
	}
	return nil
}

func (f *fakeRepo) DeleteTweet(_ context.Context, tweetId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tweets, tweetId)
	return nil
}

func (f *fakeRepo) GetTweetsByAuthor(_ context.Context, userId int64, param pagination.Param) ([]*model.Tweet, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := []*model.Tweet{}
	for _, tweet := range f.tweets {
		if tweet.UserId == userId {
			all = append(all, tweet)
		}
	}
	pagination.SortStable(all, func(a, b *model.Tweet) bool { return a.CreatedAt > b.CreatedAt }, func(t *model.Tweet) int64 { return t.TweetId })
	return pagination.Page(all, param), int64(len(all)), nil
}

func TestCreateTweetRejectsBlankAndOverlong(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = true
	service := &TweetService{ctx: context.Background(), repo: repo}

	_, err := service.CreateTweet(1, "   ")
	require.Error(t, err)
	assert.Equal(t, int64(errno.RequestErrCode), errno.ConvertErr(err).ErrCode)

	_, err = service.CreateTweet(1, strings.Repeat("x", MaxTweetLength+1))
	require.Error(t, err)
	assert.Equal(t, int64(errno.RequestErrCode), errno.ConvertErr(err).ErrCode)
	assert.Empty(t, repo.tweets)
}

func TestUpdateTweetOwnershipEnforced(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = true
	repo.users[2] = true
	service := &TweetService{ctx: context.Background(), repo: repo}

	tweet, err := service.CreateTweet(1, "hello world")
	require.NoError(t, err)

	err = service.UpdateTweet(2, tweet.TweetId, "tampered")
	require.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)
	assert.Equal(t, "hello world", repo.tweets[tweet.TweetId].Content)

	require.NoError(t, service.UpdateTweet(1, tweet.TweetId, "edited"))
	assert.Equal(t, "edited", repo.tweets[tweet.TweetId].Content)
}

type tweetLookupFailRepo struct {
	*fakeRepo
}

func (f *tweetLookupFailRepo) GetTweet(_ context.Context, _ int64) (*model.Tweet, error) {
	return nil, fmt.Errorf("connection refused")
}

func TestUpdateTweetStorageFailureIsNotNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = true
	service := &TweetService{ctx: context.Background(), repo: repo}

	tweet, err := service.CreateTweet(1, "hello world")
	require.NoError(t, err)

	failing := &TweetService{ctx: context.Background(), repo: &tweetLookupFailRepo{fakeRepo: repo}}
	err = failing.UpdateTweet(1, tweet.TweetId, "edited")
	require.Error(t, err)
	assert.Equal(t, int64(errno.MysqlErrCode), errno.ConvertErr(err).ErrCode)
	assert.Equal(t, "hello world", repo.tweets[tweet.TweetId].Content)
}

func TestUpdateTweetUnknownTweet(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = true
	service := &TweetService{ctx: context.Background(), repo: repo}

	err := service.UpdateTweet(1, 999, "edited")
	require.Error(t, err)
	assert.Equal(t, int64(errno.RecordNotFoundErrCode), errno.ConvertErr(err).ErrCode)
}

func TestDeleteTweetOwnershipEnforced(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = true
	repo.users[2] = true
	service := &TweetService{ctx: context.Background(), repo: repo}

	tweet, err := service.CreateTweet(1, "keep me")
	require.NoError(t, err)

	err = service.DeleteTweet(2, tweet.TweetId)
	require.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)
	assert.Len(t, repo.tweets, 1)

	require.NoError(t, service.DeleteTweet(1, tweet.TweetId))
	assert.Empty(t, repo.tweets)
}

func TestUserTweetsNewestFirstPaginated(t *testing.T) {
	repo := newFakeRepo()
	repo.users[1] = true
	service := &TweetService{ctx: context.Background(), repo: repo}

	created := make([]*model.Tweet, 0, 3)
	for _, content := range []string{"first", "second", "third"} {
		tweet, err := service.CreateTweet(1, content)
		require.NoError(t, err)
		created = append(created, tweet)
	}

	tweets, count, err := service.UserTweets(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	require.Len(t, tweets, 2)
	assert.Equal(t, created[2].TweetId, tweets[0].TweetId)
	assert.Equal(t, created[1].TweetId, tweets[1].TweetId)

	tweets, _, err = service.UserTweets(1, 2, 2)
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	assert.Equal(t, created[0].TweetId, tweets[0].TweetId)
}
