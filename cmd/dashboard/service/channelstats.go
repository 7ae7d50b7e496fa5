package service

import (
	"context"

	interactiondb "vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	relationdb "vidtube.com/cmd/relation/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
)

// ChannelStats 频道统计视图, 每一项都是读时聚合, 无数据时为0而不是错误
type ChannelStats struct {
	VideoCount       int64 `json:"video_count"`
	VideoViews       int64 `json:"video_views"`
	SubscriberCount  int64 `json:"subscriber_count"`
	VideoLikeCount   int64 `json:"video_like_count"`
	CommentLikeCount int64 `json:"comment_like_count"`
	TweetLikeCount   int64 `json:"tweet_like_count"`
}

// StatsRepo 统计视图的存储契约
type StatsRepo interface {
	IsUserExist(ctx context.Context, userId int64) (bool, error)
	CountVideosByOwner(ctx context.Context, userId int64) (int64, int64, error)
	GetSubscriberCount(ctx context.Context, channelId int64) (int64, error)
	CountVideoLikesByOwner(ctx context.Context, userId int64) (int64, error)
	CountCommentLikesByAuthor(ctx context.Context, userId int64) (int64, error)
	CountTweetLikesByAuthor(ctx context.Context, userId int64) (int64, error)
	GetVideosByOwner(ctx context.Context, userId int64) ([]*model.Video, error)
}

type dbRepo struct{}

func (dbRepo) IsUserExist(ctx context.Context, userId int64) (bool, error) {
	return userdb.IsUserExist(ctx, userId)
}

func (dbRepo) CountVideosByOwner(ctx context.Context, userId int64) (int64, int64, error) {
	return videodb.CountVideosByOwner(ctx, userId)
}

func (dbRepo) GetSubscriberCount(ctx context.Context, channelId int64) (int64, error) {
	return relationdb.GetSubscriberCount(ctx, channelId)
}

func (dbRepo) CountVideoLikesByOwner(ctx context.Context, userId int64) (int64, error) {
	return interactiondb.CountVideoLikesByOwner(ctx, userId)
}

func (dbRepo) CountCommentLikesByAuthor(ctx context.Context, userId int64) (int64, error) {
	return interactiondb.CountCommentLikesByAuthor(ctx, userId)
}

func (dbRepo) CountTweetLikesByAuthor(ctx context.Context, userId int64) (int64, error) {
	return interactiondb.CountTweetLikesByAuthor(ctx, userId)
}

func (dbRepo) GetVideosByOwner(ctx context.Context, userId int64) ([]*model.Video, error) {
	return videodb.GetVideosByOwner(ctx, userId)
}

type ChannelStatsService struct {
	ctx  context.Context
	repo StatsRepo
}

func NewChannelStatsService(ctx context.Context) *ChannelStatsService {
	return &ChannelStatsService{ctx: ctx, repo: dbRepo{}}
}

// ChannelStats 统计主体自己的频道, 各聚合间不要求同一快照
func (service *ChannelStatsService) ChannelStats(principalId int64) (*ChannelStats, error) {
	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	stats := &ChannelStats{}
	if stats.VideoCount, stats.VideoViews, err = service.repo.CountVideosByOwner(service.ctx, principalId); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if stats.SubscriberCount, err = service.repo.GetSubscriberCount(service.ctx, principalId); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if stats.VideoLikeCount, err = service.repo.CountVideoLikesByOwner(service.ctx, principalId); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if stats.CommentLikeCount, err = service.repo.CountCommentLikesByAuthor(service.ctx, principalId); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if stats.TweetLikeCount, err = service.repo.CountTweetLikesByAuthor(service.ctx, principalId); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return stats, nil
}

type ChannelVideosService struct {
	ctx  context.Context
	repo StatsRepo
}

func NewChannelVideosService(ctx context.Context) *ChannelVideosService {
	return &ChannelVideosService{ctx: ctx, repo: dbRepo{}}
}

// ChannelVideos 主体自己的视频, 最新的在最前
func (service *ChannelVideosService) ChannelVideos(principalId int64) ([]*model.Video, error) {
	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}
	videos, err := service.repo.GetVideosByOwner(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return videos, nil
}
