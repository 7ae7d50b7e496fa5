package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
)

// RelationRepo 订阅边的存储契约
type RelationRepo interface {
	IsUserExist(ctx context.Context, userId int64) (bool, error)

	ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error)
	IsSubscriptionExist(ctx context.Context, subscriberId, channelId int64) (bool, error)
	GetSubscriberCount(ctx context.Context, channelId int64) (int64, error)
	GetSubscribedToCount(ctx context.Context, subscriberId int64) (int64, error)
	GetSubscriberIdsPaged(ctx context.Context, channelId, pageNum, pageSize int64) ([]int64, error)
	GetSubscribedChannelIdsPaged(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]int64, error)

	GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
}

type dbRepo struct{}

func (dbRepo) IsUserExist(ctx context.Context, userId int64) (bool, error) {
	return userdb.IsUserExist(ctx, userId)
}

func (dbRepo) ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return db.ToggleSubscription(ctx, subscriberId, channelId)
}

func (dbRepo) IsSubscriptionExist(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return db.IsSubscriptionExist(ctx, subscriberId, channelId)
}

func (dbRepo) GetSubscriberCount(ctx context.Context, channelId int64) (int64, error) {
	return db.GetSubscriberCount(ctx, channelId)
}

func (dbRepo) GetSubscribedToCount(ctx context.Context, subscriberId int64) (int64, error) {
	return db.GetSubscribedToCount(ctx, subscriberId)
}

func (dbRepo) GetSubscriberIdsPaged(ctx context.Context, channelId, pageNum, pageSize int64) ([]int64, error) {
	return db.GetSubscriberIdsPaged(ctx, channelId, pageNum, pageSize)
}

func (dbRepo) GetSubscribedChannelIdsPaged(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]int64, error) {
	return db.GetSubscribedChannelIdsPaged(ctx, subscriberId, pageNum, pageSize)
}

func (dbRepo) GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	return userdb.GetUsersByIds(ctx, userIds)
}
