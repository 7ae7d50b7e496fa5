package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
)

type subPair struct {
	subscriberId int64
	channelId    int64
}

// fakeRepo mutex保护下的map即"同一对上的toggle原子翻转"原语
type fakeRepo struct {
	mu    sync.Mutex
	users map[int64]*model.User
	subs  map[subPair]int64 // pair -> 插入序号
	seq   int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users: map[int64]*model.User{},
		subs:  map[subPair]int64{},
	}
}

func (f *fakeRepo) addUser(userId int64) {
	f.users[userId] = &model.User{UserId: userId, UserName: fmt.Sprintf("user%d", userId), Password: "secret"}
}

func (f *fakeRepo) IsUserExist(_ context.Context, userId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.users[userId]
	return ok, nil
}

func (f *fakeRepo) ToggleSubscription(_ context.Context, subscriberId, channelId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pair := subPair{subscriberId: subscriberId, channelId: channelId}
	if _, ok := f.subs[pair]; ok {
		delete(f.subs, pair)
		return false, nil
	}
	f.seq++
	f.subs[pair] = f.seq
	return true, nil
}

func (f *fakeRepo) IsSubscriptionExist(_ context.Context, subscriberId, channelId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.subs[subPair{subscriberId: subscriberId, channelId: channelId}]
	return ok, nil
}

func (f *fakeRepo) GetSubscriberCount(_ context.Context, channelId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for pair := range f.subs {
		if pair.channelId == channelId {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetSubscribedToCount(_ context.Context, subscriberId int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for pair := range f.subs {
		if pair.subscriberId == subscriberId {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) GetSubscriberIdsPaged(_ context.Context, channelId, pageNum, pageSize int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	type entry struct {
		id  int64
		seq int64
	}
	entries := []entry{}
	for pair, seq := range f.subs {
		if pair.channelId == channelId {
			entries = append(entries, entry{id: pair.subscriberId, seq: seq})
		}
	}
	pagination.SortStable(entries, func(a, b entry) bool { return a.seq > b.seq }, func(e entry) int64 { return e.id })
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.id)
	}
	return pagination.Page(ids, pagination.Param{PageNum: pageNum, PageSize: pageSize}), nil
}

func (f *fakeRepo) GetSubscribedChannelIdsPaged(_ context.Context, subscriberId, pageNum, pageSize int64) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	type entry struct {
		id  int64
		seq int64
	}
	entries := []entry{}
	for pair, seq := range f.subs {
		if pair.subscriberId == subscriberId {
			entries = append(entries, entry{id: pair.channelId, seq: seq})
		}
	}
	pagination.SortStable(entries, func(a, b entry) bool { return a.seq > b.seq }, func(e entry) int64 { return e.id })
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.id)
	}
	return pagination.Page(ids, pagination.Param{PageNum: pageNum, PageSize: pageSize}), nil
}

func (f *fakeRepo) GetUsersByIds(_ context.Context, userIds []int64) ([]*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := []*model.User{}
	for _, id := range userIds {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func TestToggleSubscriptionCreateThenRemove(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	repo.addUser(2)
	service := &ToggleSubscriptionService{ctx: context.Background(), repo: repo}

	result, err := service.ToggleSubscription(2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, ToggleStateCreated, result.State)

	count, err := repo.GetSubscriberCount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	result, err = service.ToggleSubscription(2, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, ToggleStateRemoved, result.State)
	assert.Empty(t, repo.subs)
}

func TestToggleSubscriptionSelfRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	service := &ToggleSubscriptionService{ctx: context.Background(), repo: repo}

	_, err := service.ToggleSubscription(1, 1, 1)
	require.Error(t, err)
	assert.Equal(t, int64(errno.RequestErrCode), errno.ConvertErr(err).ErrCode)
	// 不产生任何边
	assert.Empty(t, repo.subs)
}

func TestToggleSubscriptionPrincipalMismatch(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	repo.addUser(2)
	service := &ToggleSubscriptionService{ctx: context.Background(), repo: repo}

	_, err := service.ToggleSubscription(1, 2, 1)
	require.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)
	assert.Empty(t, repo.subs)
}

func TestToggleSubscriptionUnknownChannel(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(2)
	service := &ToggleSubscriptionService{ctx: context.Background(), repo: repo}

	_, err := service.ToggleSubscription(2, 2, 999)
	require.Error(t, err)
	assert.Equal(t, int64(errno.RecordNotFoundErrCode), errno.ConvertErr(err).ErrCode)
}

func TestToggleSubscriptionConcurrentSamePair(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	repo.addUser(2)
	service := &ToggleSubscriptionService{ctx: context.Background(), repo: repo}

	const n = 8
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.ToggleSubscription(2, 2, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// 偶数次翻转回到初始状态
	assert.Empty(t, repo.subs)
}

func TestSubscriberListPublicProjection(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	repo.addUser(2)
	repo.addUser(3)
	toggle := &ToggleSubscriptionService{ctx: context.Background(), repo: repo}
	service := &FollowListService{ctx: context.Background(), repo: repo}

	for _, subscriberId := range []int64{2, 3} {
		_, err := toggle.ToggleSubscription(subscriberId, subscriberId, 1)
		require.NoError(t, err)
	}

	infos, err := service.SubscriberList(1, 1, 10)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	// 最近订阅的在最前
	assert.Equal(t, int64(3), infos[0].UserId)
	assert.Equal(t, int64(2), infos[1].UserId)
	assert.Equal(t, "user3", infos[0].UserName)
}

func TestSubscribedChannelListEmpty(t *testing.T) {
	repo := newFakeRepo()
	repo.addUser(1)
	service := &FollowListService{ctx: context.Background(), repo: repo}

	infos, err := service.SubscribedChannelList(1, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, infos)
}
