package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/errno"
)

const (
	ToggleStateCreated = "created"
	ToggleStateRemoved = "removed"
)

type ToggleResult struct {
	State        string `json:"state"`
	SubscriberId int64  `json:"subscriber_id"`
	ChannelId    int64  `json:"channel_id"`
}

type ToggleSubscriptionService struct {
	ctx  context.Context
	repo RelationRepo
}

func NewToggleSubscriptionService(ctx context.Context) *ToggleSubscriptionService {
	return &ToggleSubscriptionService{ctx: ctx, repo: dbRepo{}}
}

// ToggleSubscription 订阅/取消订阅, 不允许订阅自己
// id为雪花int64, 自订阅与归属判断都使用值相等比较
func (service *ToggleSubscriptionService) ToggleSubscription(principalId, subscriberId, channelId int64) (*ToggleResult, error) {
	if principalId != subscriberId {
		return nil, errno.AuthorizationFailedErr.WithMessage("principal does not match subscriber")
	}
	if subscriberId == channelId {
		return nil, errno.RequestErr.WithMessage("cannot subscribe to yourself")
	}

	for _, userId := range []int64{subscriberId, channelId} {
		exist, err := service.repo.IsUserExist(service.ctx, userId)
		if err != nil {
			return nil, errno.MysqlErr.WithMessage(err.Error())
		}
		if !exist {
			return nil, errno.RecordNotFoundErr.WithMessage("user not found")
		}
	}

	created, err := service.repo.ToggleSubscription(service.ctx, subscriberId, channelId)
	if err != nil {
		logrus.Errorf("toggle subscription failed, subscriber=%d, channel=%d, err=%v", subscriberId, channelId, err)
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	// 先失效计数缓存再返回, 保证随后的读重新聚合
	cache.Counter().Invalidate(service.ctx, cache.SubscriberCountKey(channelId))

	result := &ToggleResult{
		State:        ToggleStateRemoved,
		SubscriberId: subscriberId,
		ChannelId:    channelId,
	}
	if created {
		result.State = ToggleStateCreated
	}
	return result, nil
}
