package service

import (
	"context"
	"strings"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/video/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/owner"
)

type UpdateVideoService struct {
	ctx  context.Context
	repo VideoRepo
}

func NewUpdateVideoService(ctx context.Context) *UpdateVideoService {
	return &UpdateVideoService{ctx: ctx, repo: dbRepo{}}
}

// loadVideo 区分记录不存在与存储故障
func loadVideo(ctx context.Context, repo VideoRepo, videoId int64) (*model.Video, error) {
	video, err := repo.GetVideo(ctx, videoId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.RecordNotFoundErr.WithMessage("video not found")
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return video, nil
}

// UpdateVideo 归属校验前重新加载实体, 不信任调用方持有的副本
func (service *UpdateVideoService) UpdateVideo(principalId, videoId int64, title, description, coverUrl string) error {
	video, err := loadVideo(service.ctx, service.repo, videoId)
	if err != nil {
		return err
	}
	if err := owner.Assert(video.UserId, principalId); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(title) != "" {
		updates["title"] = title
	}
	if strings.TrimSpace(description) != "" {
		updates["description"] = description
	}
	if strings.TrimSpace(coverUrl) != "" {
		updates["cover_url"] = coverUrl
	}
	if len(updates) == 0 {
		return errno.RequestErr.WithMessage("nothing to update")
	}

	if err := service.repo.UpdateVideo(service.ctx, videoId, updates); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

// TogglePublish 翻转发布状态
func (service *UpdateVideoService) TogglePublish(principalId, videoId int64) (bool, error) {
	video, err := loadVideo(service.ctx, service.repo, videoId)
	if err != nil {
		return false, err
	}
	if err := owner.Assert(video.UserId, principalId); err != nil {
		return false, err
	}
	published := !video.IsPublished
	if err := service.repo.UpdateVideo(service.ctx, videoId, map[string]interface{}{"is_published": published}); err != nil {
		return false, errno.MysqlErr.WithMessage(err.Error())
	}
	return published, nil
}

type DeleteVideoService struct {
	ctx  context.Context
	repo VideoRepo
}

func NewDeleteVideoService(ctx context.Context) *DeleteVideoService {
	return &DeleteVideoService{ctx: ctx, repo: dbRepo{}}
}

func (service *DeleteVideoService) DeleteVideo(principalId, videoId int64) error {
	video, err := loadVideo(service.ctx, service.repo, videoId)
	if err != nil {
		return err
	}
	if err := owner.Assert(video.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.DeleteVideo(service.ctx, videoId); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}
