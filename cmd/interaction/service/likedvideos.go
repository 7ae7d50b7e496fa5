package service

import (
	"context"

	"github.com/pkg/errors"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
)

type LikedVideosService struct {
	ctx  context.Context
	repo LikeRepo
}

func NewLikedVideosService(ctx context.Context) *LikedVideosService {
	return &LikedVideosService{ctx: ctx, repo: dbRepo{}}
}

// LikedVideos 用户点赞过的视频, 按点赞时间倒序, 每条内嵌作者公开投影
// 组合过程中任何一步存储失败都整体失败, 不返回部分视图
func (service *LikedVideosService) LikedVideos(principalId int64) ([]*model.VideoInfo, error) {
	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	videoIds, err := service.repo.GetLikedVideoIds(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(errors.WithMessage(err, "list liked edges failed").Error())
	}
	if len(videoIds) == 0 {
		return []*model.VideoInfo{}, nil
	}

	return composeVideoInfos(service.ctx, service.repo, videoIds)
}

// composeVideoInfos 按给定顺序将视频id序列装配为带作者投影的视图行
// 悬挂的id(视频已删除)直接跳过
func composeVideoInfos(ctx context.Context, repo LikeRepo, videoIds []int64) ([]*model.VideoInfo, error) {
	videos, err := repo.GetVideosByIds(ctx, videoIds)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		videoById[v.VideoId] = v
		ownerIds = append(ownerIds, v.UserId)
	}

	owners, err := repo.GetUsersByIds(ctx, ownerIds)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	infos := make([]*model.VideoInfo, 0, len(videoIds))
	for _, id := range videoIds {
		video, ok := videoById[id]
		if !ok {
			continue
		}
		var ownerInfo *model.UserInfo
		if owner, ok := ownerById[video.UserId]; ok {
			ownerInfo = owner.Info()
		}
		infos = append(infos, video.Info(ownerInfo))
	}
	return infos, nil
}
