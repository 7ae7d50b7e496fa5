package service

import (
	"context"

	"vidtube.com/cmd/model"
	relationdb "vidtube.com/cmd/relation/dal/db"
	"vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
)

// UserRepo 用户实体及其视图装配所需的存储契约
type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, userId int64) (*model.User, error)
	GetUserByUserName(ctx context.Context, userName string) (*model.User, error)
	CheckUserExist(ctx context.Context, userName, email string) (bool, error)
	IsUserExist(ctx context.Context, userId int64) (bool, error)
	UpdateUser(ctx context.Context, userId int64, updates map[string]interface{}) error
	DeleteUser(ctx context.Context, userId int64) error
	GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)

	UpsertWatchRecord(ctx context.Context, record *model.WatchRecord) error
	GetWatchHistory(ctx context.Context, userId int64) ([]*model.WatchRecord, error)
	GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
	IsVideoExist(ctx context.Context, videoId int64) (bool, error)

	GetSubscriberCount(ctx context.Context, channelId int64) (int64, error)
	GetSubscribedToCount(ctx context.Context, subscriberId int64) (int64, error)
	IsSubscriptionExist(ctx context.Context, subscriberId, channelId int64) (bool, error)
}

type dbRepo struct{}

func (dbRepo) CreateUser(ctx context.Context, user *model.User) error {
	return db.CreateUser(ctx, user)
}

func (dbRepo) GetUser(ctx context.Context, userId int64) (*model.User, error) {
	return db.GetUser(ctx, userId)
}

func (dbRepo) GetUserByUserName(ctx context.Context, userName string) (*model.User, error) {
	return db.GetUserByUserName(ctx, userName)
}

func (dbRepo) CheckUserExist(ctx context.Context, userName, email string) (bool, error) {
	return db.CheckUserExist(ctx, userName, email)
}

func (dbRepo) IsUserExist(ctx context.Context, userId int64) (bool, error) {
	return db.IsUserExist(ctx, userId)
}

func (dbRepo) UpdateUser(ctx context.Context, userId int64, updates map[string]interface{}) error {
	return db.UpdateUser(ctx, userId, updates)
}

func (dbRepo) DeleteUser(ctx context.Context, userId int64) error {
	return db.DeleteUser(ctx, userId)
}

func (dbRepo) GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	return db.GetUsersByIds(ctx, userIds)
}

func (dbRepo) UpsertWatchRecord(ctx context.Context, record *model.WatchRecord) error {
	return db.UpsertWatchRecord(ctx, record)
}

func (dbRepo) GetWatchHistory(ctx context.Context, userId int64) ([]*model.WatchRecord, error) {
	return db.GetWatchHistory(ctx, userId)
}

func (dbRepo) GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	return videodb.GetVideosByIds(ctx, videoIds)
}

func (dbRepo) IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	return videodb.IsVideoExist(ctx, videoId)
}

func (dbRepo) GetSubscriberCount(ctx context.Context, channelId int64) (int64, error) {
	return relationdb.GetSubscriberCount(ctx, channelId)
}

func (dbRepo) GetSubscribedToCount(ctx context.Context, subscriberId int64) (int64, error) {
	return relationdb.GetSubscribedToCount(ctx, subscriberId)
}

func (dbRepo) IsSubscriptionExist(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return relationdb.IsSubscriptionExist(ctx, subscriberId, channelId)
}
