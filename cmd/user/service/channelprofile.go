package service

import (
	"context"

	"vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/errno"
)

// ChannelProfile 频道主页视图: 公开字段加三个聚合
// 订阅数为读时聚合, IsSubscribed为当前viewer到该频道的边是否存在
type ChannelProfile struct {
	UserId            int64  `json:"user_id"`
	UserName          string `json:"user_name"`
	FullName          string `json:"full_name"`
	AvatarUrl         string `json:"avatar_url"`
	CoverUrl          string `json:"cover_url"`
	SubscriberCount   int64  `json:"subscriber_count"`
	SubscribedToCount int64  `json:"subscribed_to_count"`
	IsSubscribed      bool   `json:"is_subscribed"`
}

type ChannelProfileService struct {
	ctx  context.Context
	repo UserRepo
}

func NewChannelProfileService(ctx context.Context) *ChannelProfileService {
	return &ChannelProfileService{ctx: ctx, repo: dbRepo{}}
}

// Profile 按用户名查频道主页, 用户名大小写不敏感, viewerId为0表示匿名访问
func (service *ChannelProfileService) Profile(userName string, viewerId int64) (*ChannelProfile, error) {
	user, err := service.repo.GetUserByUserName(service.ctx, userName)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.RecordNotFoundErr.WithMessage("channel does not exist")
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	subscriberCount, err := service.subscriberCount(user.UserId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	subscribedToCount, err := service.repo.GetSubscribedToCount(service.ctx, user.UserId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	isSubscribed := false
	if viewerId > 0 {
		isSubscribed, err = service.repo.IsSubscriptionExist(service.ctx, viewerId, user.UserId)
		if err != nil {
			return nil, errno.MysqlErr.WithMessage(err.Error())
		}
	}

	return &ChannelProfile{
		UserId:            user.UserId,
		UserName:          user.UserName,
		FullName:          user.FullName,
		AvatarUrl:         user.AvatarUrl,
		CoverUrl:          user.CoverUrl,
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}

func (service *ChannelProfileService) subscriberCount(channelId int64) (int64, error) {
	key := cache.SubscriberCountKey(channelId)
	if count, ok := cache.Counter().GetCount(service.ctx, key); ok {
		return count, nil
	}
	count, err := service.repo.GetSubscriberCount(service.ctx, channelId)
	if err != nil {
		return 0, err
	}
	cache.Counter().SetCount(service.ctx, key, count)
	return count, nil
}
