package service

import (
	"context"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	tweetdb "vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/pagination"
)

// LikeRepo 点赞边与其关联实体的存储契约, 默认实现落在各dal上
type LikeRepo interface {
	IsUserExist(ctx context.Context, userId int64) (bool, error)
	IsVideoExist(ctx context.Context, videoId int64) (bool, error)
	IsCommentExist(ctx context.Context, commentId int64) (bool, error)
	IsTweetExist(ctx context.Context, tweetId int64) (bool, error)

	ToggleLike(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error)
	GetLikeCount(ctx context.Context, targetType string, targetId int64) (int64, error)
	GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error)

	GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
	GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
}

// CommentRepo 评论实体的存储契约
type CommentRepo interface {
	IsUserExist(ctx context.Context, userId int64) (bool, error)
	IsVideoExist(ctx context.Context, videoId int64) (bool, error)

	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, commentId int64) (*model.Comment, error)
	UpdateComment(ctx context.Context, commentId int64, content string) error
	DeleteComment(ctx context.Context, commentId int64) error
	GetVideoComments(ctx context.Context, videoId int64, param pagination.Param) ([]*model.Comment, int64, error)
	GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
}

type dbRepo struct{}

func (dbRepo) IsUserExist(ctx context.Context, userId int64) (bool, error) {
	return userdb.IsUserExist(ctx, userId)
}

func (dbRepo) IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	return videodb.IsVideoExist(ctx, videoId)
}

func (dbRepo) IsCommentExist(ctx context.Context, commentId int64) (bool, error) {
	return db.IsCommentExist(ctx, commentId)
}

func (dbRepo) IsTweetExist(ctx context.Context, tweetId int64) (bool, error) {
	return tweetdb.IsTweetExist(ctx, tweetId)
}

func (dbRepo) ToggleLike(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	return db.ToggleLike(ctx, userId, targetType, targetId)
}

func (dbRepo) GetLikeCount(ctx context.Context, targetType string, targetId int64) (int64, error) {
	return db.GetLikeCount(ctx, targetType, targetId)
}

func (dbRepo) GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	return db.GetLikedVideoIds(ctx, userId)
}

func (dbRepo) GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	return videodb.GetVideosByIds(ctx, videoIds)
}

func (dbRepo) GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	return userdb.GetUsersByIds(ctx, userIds)
}

func (dbRepo) CreateComment(ctx context.Context, comment *model.Comment) error {
	return db.CreateComment(ctx, comment)
}

func (dbRepo) GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	return db.GetComment(ctx, commentId)
}

func (dbRepo) UpdateComment(ctx context.Context, commentId int64, content string) error {
	return db.UpdateComment(ctx, commentId, content)
}

func (dbRepo) DeleteComment(ctx context.Context, commentId int64) error {
	return db.DeleteComment(ctx, commentId)
}

func (dbRepo) GetVideoComments(ctx context.Context, videoId int64, param pagination.Param) ([]*model.Comment, int64, error) {
	return db.GetVideoComments(ctx, videoId, param)
}
