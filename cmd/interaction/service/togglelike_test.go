package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
)

// fakeRepo 内存版存储, mutex保护下的map即"同一对上的toggle原子翻转"原语
type fakeRepo struct {
	mu       sync.Mutex
	users    map[int64]*model.User
	videos   map[int64]*model.Video
	comments map[int64]*model.Comment
	tweets   map[int64]*model.Tweet
	likes    map[string]int64 // pair key -> 插入序号
	likeSeq  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:    map[int64]*model.User{},
		videos:   map[int64]*model.Video{},
		comments: map[int64]*model.Comment{},
		tweets:   map[int64]*model.Tweet{},
		likes:    map[string]int64{},
	}
}

func likeKey(userId int64, targetType string, targetId int64) string {
	return fmt.Sprintf("%d:%s:%d", userId, targetType, targetId)
}

func (f *fakeRepo) IsUserExist(_ context.Context, userId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[userId]
	return ok, nil
}

func (f *fakeRepo) IsVideoExist(_ context.Context, videoId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.videos[videoId]
	return ok, nil
}

func (f *fakeRepo) IsCommentExist(_ context.Context, commentId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.comments[commentId]
	return ok, nil
}

func (f *fakeRepo) IsTweetExist(_ context.Context, tweetId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.tweets[tweetId]
	return ok, nil
}

func (f *fakeRepo) ToggleLike(_ context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := likeKey(userId, targetType, targetId)
	if _, ok := f.likes[key]; ok {
		delete(f.likes, key)
		return false, nil
	}
	f.likeSeq++
	f.likes[key] = f.likeSeq
	return true, nil
}

func (f *fakeRepo) GetLikeCount(_ context.Context, targetType string, targetId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	suffix := fmt.Sprintf(":%s:%d", targetType, targetId)
	var count int64
	for key := range f.likes {
		if len(key) > len(suffix) && key[len(key)-len(suffix):] == suffix {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetLikedVideoIds(_ context.Context, userId int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	type entry struct {
		videoId int64
		seq     int64
	}
	entries := []entry{}
	prefix := fmt.Sprintf("%d:%s:", userId, constants.LikeTargetVideo)
	for key, seq := range f.likes {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			var videoId int64
			fmt.Sscanf(key[len(prefix):], "%d", &videoId)
			entries = append(entries, entry{videoId: videoId, seq: seq})
		}
	}
	// 最近点赞的在最前
	pagination.SortStable(entries, func(a, b entry) bool { return a.seq > b.seq }, func(e entry) int64 { return e.videoId })
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.videoId)
	}
	return ids, nil
}

func (f *fakeRepo) GetVideosByIds(_ context.Context, videoIds []int64) ([]*model.Video, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	videos := []*model.Video{}
	for _, id := range videoIds {
		if v, ok := f.videos[id]; ok {
			videos = append(videos, v)
		}
	}
	return videos, nil
}

func (f *fakeRepo) GetUsersByIds(_ context.Context, userIds []int64) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []*model.User{}
	seen := map[int64]bool{}
	for _, id := range userIds {
		if seen[id] {
			continue
		}
		seen[id] = true
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (f *fakeRepo) CreateComment(_ context.Context, comment *model.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.comments[comment.CommentId] = comment
	return nil
}

func (f *fakeRepo) GetComment(_ context.Context, commentId int64) (*model.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.comments[commentId]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (f *fakeRepo) UpdateComment(_ context.Context, commentId int64, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.comments[commentId]; ok {
		c.Content = content
	}
	return nil
}

func (f *fakeRepo) DeleteComment(_ context.Context, commentId int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.comments, commentId)
	return nil
}

func (f *fakeRepo) GetVideoComments(_ context.Context, videoId int64, param pagination.Param) ([]*model.Comment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := []*model.Comment{}
	for _, c := range f.comments {
		if c.VideoId == videoId {
			all = append(all, c)
		}
	}
	pagination.SortStable(all, func(a, b *model.Comment) bool { return a.CreatedAt > b.CreatedAt }, func(c *model.Comment) int64 { return c.CommentId })
	return pagination.Page(all, param), int64(len(all)), nil
}

func (f *fakeRepo) addUser(userId int64) {
	f.users[userId] = &model.User{UserId: userId, UserName: fmt.Sprintf("user%d", userId), Password: "secret"}
}

func (f *fakeRepo) addVideo(videoId, ownerId int64) {
	f.videos[videoId] = &model.Video{VideoId: videoId, UserId: ownerId, Title: fmt.Sprintf("video%d", videoId)}
}

func TestToggleLikeCreateThenRemove(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	repo.addUser(2)
	repo.addVideo(100, 1)
	service := &ToggleLikeService{ctx: context.Background(), repo: repo}

	// 第一次toggle建边
	result, err := service.ToggleLike(2, 2, constants.LikeTargetVideo, 100)
	require.NoError(t, err)
	assert.Equal(t, ToggleStateCreated, result.State)
	assert.Len(t, repo.likes, 1)

	// 第二次toggle删边, 回到初始状态
	result, err = service.ToggleLike(2, 2, constants.LikeTargetVideo, 100)
	require.NoError(t, err)
	assert.Equal(t, ToggleStateRemoved, result.State)
	assert.Empty(t, repo.likes)
}

func TestToggleLikeConcurrentSamePair(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	repo.addUser(2)
	repo.addVideo(100, 1)
	service := &ToggleLikeService{ctx: context.Background(), repo: repo}

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ToggleLike(2, 2, constants.LikeTargetVideo, 100)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// 偶数次翻转回到初始状态, 且任何时刻同一对至多一条边
	assert.Empty(t, repo.likes)
}

func TestToggleLikePrincipalMismatch(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	repo.addUser(2)
	repo.addVideo(100, 1)
	service := &ToggleLikeService{ctx: context.Background(), repo: repo}

	_, err := service.ToggleLike(1, 2, constants.LikeTargetVideo, 100)
	require.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)
	assert.Empty(t, repo.likes)
}

func TestToggleLikeUnknownTargetType(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(2)
	service := &ToggleLikeService{ctx: context.Background(), repo: repo}

	_, err := service.ToggleLike(2, 2, "playlist", 100)
	require.Error(t, err)
	assert.Equal(t, int64(errno.RequestErrCode), errno.ConvertErr(err).ErrCode)
}

func TestToggleLikeTargetNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(2)
	service := &ToggleLikeService{ctx: context.Background(), repo: repo}

	_, err := service.ToggleLike(2, 2, constants.LikeTargetVideo, 999)
	require.Error(t, err)
	assert.Equal(t, int64(errno.RecordNotFoundErrCode), errno.ConvertErr(err).ErrCode)
	assert.Empty(t, repo.likes)
}

func TestGetLikeCount(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	repo.addUser(2)
	repo.addUser(3)
	repo.addVideo(100, 1)
	service := &ToggleLikeService{ctx: context.Background(), repo: repo}

	for _, userId := range []int64{2, 3} {
		_, err := service.ToggleLike(userId, userId, constants.LikeTargetVideo, 100)
		require.NoError(t, err)
	}

	count, err := service.GetLikeCount(constants.LikeTargetVideo, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
