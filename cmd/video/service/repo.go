package service

import (
	"context"

	"vidtube.com/cmd/model"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/pagination"
)

// VideoRepo 视频实体与列表视图的存储契约
type VideoRepo interface {
	IsUserExist(ctx context.Context, userId int64) (bool, error)

	InsertVideo(ctx context.Context, video *model.Video) error
	GetVideo(ctx context.Context, videoId int64) (*model.Video, error)
	UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error
	DeleteVideo(ctx context.Context, videoId int64) error
	AddVisitCount(ctx context.Context, videoId int64) error
	SearchVideos(ctx context.Context, keyword, sortField, sortOrder string, param pagination.Param) ([]*model.Video, int64, error)

	GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
	GetUser(ctx context.Context, userId int64) (*model.User, error)
}

type dbRepo struct{}

func (dbRepo) IsUserExist(ctx context.Context, userId int64) (bool, error) {
	return userdb.IsUserExist(ctx, userId)
}

func (dbRepo) InsertVideo(ctx context.Context, video *model.Video) error {
	return db.InsertVideo(ctx, video)
}

func (dbRepo) GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	return db.GetVideo(ctx, videoId)
}

func (dbRepo) UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	return db.UpdateVideo(ctx, videoId, updates)
}

func (dbRepo) DeleteVideo(ctx context.Context, videoId int64) error {
	return db.DeleteVideo(ctx, videoId)
}

func (dbRepo) AddVisitCount(ctx context.Context, videoId int64) error {
	return db.AddVisitCount(ctx, videoId)
}

func (dbRepo) SearchVideos(ctx context.Context, keyword, sortField, sortOrder string, param pagination.Param) ([]*model.Video, int64, error) {
	return db.SearchVideos(ctx, keyword, sortField, sortOrder, param)
}

func (dbRepo) GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	return userdb.GetUsersByIds(ctx, userIds)
}

func (dbRepo) GetUser(ctx context.Context, userId int64) (*model.User, error) {
	return userdb.GetUser(ctx, userId)
}
