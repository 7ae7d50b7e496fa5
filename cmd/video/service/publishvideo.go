package service

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// PublishRequest 媒体与封面为外部blob存储产出的引用
type PublishRequest struct {
	Title       string
	Description string
	VideoUrl    string
	CoverUrl    string
	Duration    int64
}

type PublishVideoService struct {
	ctx  context.Context
	repo VideoRepo
}

func NewPublishVideoService(ctx context.Context) *PublishVideoService {
	return &PublishVideoService{ctx: ctx, repo: dbRepo{}}
}

func (service *PublishVideoService) PublishVideo(principalId int64, req *PublishRequest) (*model.Video, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, errno.RequestErr.WithMessage("title is required")
	}
	if strings.TrimSpace(req.VideoUrl) == "" {
		return nil, errno.RequestErr.WithMessage("video reference is required")
	}
	if strings.TrimSpace(req.CoverUrl) == "" {
		return nil, errno.RequestErr.WithMessage("thumbnail reference is required")
	}

	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.GenerateEntityID(),
		UserId:      principalId,
		Title:       req.Title,
		Description: req.Description,
		VideoUrl:    req.VideoUrl,
		CoverUrl:    req.CoverUrl,
		Duration:    req.Duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := service.repo.InsertVideo(service.ctx, video); err != nil {
		logrus.Errorf("publish video failed, user_id=%d, err=%v", principalId, err)
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return video, nil
}
