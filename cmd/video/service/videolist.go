package service

import (
	"context"

	"vidtube.com/cmd/model"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
)

// VideoListResult 列表视图带分页元信息
type VideoListResult struct {
	Items    []*model.VideoInfo `json:"items"`
	Total    int64              `json:"total"`
	PageNum  int64              `json:"page_num"`
	PageSize int64              `json:"page_size"`
}

type VideoListService struct {
	ctx  context.Context
	repo VideoRepo
}

func NewVideoListService(ctx context.Context) *VideoListService {
	return &VideoListService{ctx: ctx, repo: dbRepo{}}
}

// VideoList 发布视频的检索视图: 标题/描述大小写不敏感子串过滤,
// 排序先于分页, 默认按创建时间倒序
func (service *VideoListService) VideoList(keyword, sortField, sortOrder string, pageNum, pageSize int64) (*VideoListResult, error) {
	param := pagination.Normalize(pageNum, pageSize)
	videos, total, err := service.repo.SearchVideos(service.ctx, keyword, sortField, sortOrder, param)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		ownerIds = append(ownerIds, v.UserId)
	}
	owners, err := service.repo.GetUsersByIds(service.ctx, ownerIds)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	ownerById := make(map[int64]*model.User, len(owners))
	for _, u := range owners {
		ownerById[u.UserId] = u
	}

	items := make([]*model.VideoInfo, 0, len(videos))
	for _, v := range videos {
		var ownerInfo *model.UserInfo
		if u, ok := ownerById[v.UserId]; ok {
			ownerInfo = u.Info()
		}
		items = append(items, v.Info(ownerInfo))
	}

	return &VideoListResult{
		Items:    items,
		Total:    total,
		PageNum:  param.PageNum,
		PageSize: param.PageSize,
	}, nil
}

type VideoInfoService struct {
	ctx  context.Context
	repo VideoRepo
}

func NewVideoInfoService(ctx context.Context) *VideoInfoService {
	return &VideoInfoService{ctx: ctx, repo: dbRepo{}}
}

// VideoInfo 单个视频视图, 每次访问播放数加一
func (service *VideoInfoService) VideoInfo(videoId int64) (*model.VideoInfo, error) {
	video, err := loadVideo(service.ctx, service.repo, videoId)
	if err != nil {
		return nil, err
	}
	if err := service.repo.AddVisitCount(service.ctx, videoId); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	video.VisitCount++

	// 所有者已删除时投影为空, 其他存储错误整体失败而不是返回部分视图
	var ownerInfo *model.UserInfo
	u, err := service.repo.GetUser(service.ctx, video.UserId)
	if err != nil && !userdb.IsRecordNotFound(err) {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if err == nil {
		ownerInfo = u.Info()
	}
	return video.Info(ownerInfo), nil
}
