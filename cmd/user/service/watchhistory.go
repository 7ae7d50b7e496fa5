package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

type WatchHistoryService struct {
	ctx  context.Context
	repo UserRepo
}

func NewWatchHistoryService(ctx context.Context) *WatchHistoryService {
	return &WatchHistoryService{ctx: ctx, repo: dbRepo{}}
}

// Record 记录一次观看, 重复观看把视频移到最前
func (service *WatchHistoryService) Record(principalId, videoId int64) error {
	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return errno.RecordNotFoundErr.WithMessage("user not found")
	}
	exist, err = service.repo.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return errno.RecordNotFoundErr.WithMessage("video not found")
	}

	record := &model.WatchRecord{
		WatchRecordId: int64(uuid.New().ID()),
		UserId:        principalId,
		VideoId:       videoId,
		WatchTime:     time.Now().Format(constants.DataFormate),
	}
	if err := service.repo.UpsertWatchRecord(service.ctx, record); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

// History 观看历史视图, 保持存储顺序(最近观看在前), 每条内嵌作者公开投影
func (service *WatchHistoryService) History(principalId int64) ([]*model.VideoInfo, error) {
	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	records, err := service.repo.GetWatchHistory(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if len(records) == 0 {
		return []*model.VideoInfo{}, nil
	}

	videoIds := make([]int64, 0, len(records))
	for _, r := range records {
		videoIds = append(videoIds, r.VideoId)
	}

	videos, err := service.repo.GetVideosByIds(service.ctx, videoIds)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	videoById := make(map[int64]*model.Video, len(videos))
	ownerIds := make([]int64, 0, len(videos))
	for _, v := range videos {
		videoById[v.VideoId] = v
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

	infos := make([]*model.VideoInfo, 0, len(videoIds))
	for _, id := range videoIds {
		video, ok := videoById[id]
		if !ok {
			// 视频已删除, 跳过悬挂记录
			continue
		}
		var ownerInfo *model.UserInfo
		if u, ok := ownerById[video.UserId]; ok {
			ownerInfo = u.Info()
		}
		infos = append(infos, video.Info(ownerInfo))
	}
	return infos, nil
}
