package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/pagination"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed, user_id=%d", video.UserId)
	}
	return nil
}

func GetVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	video := &model.Video{}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(video).Error; err != nil {
		return nil, err
	}
	return video, nil
}

func IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// 对于视频列表的查询
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func UpdateVideo(ctx context.Context, videoId int64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideo failed, video_id=%d", videoId)
	}
	return nil
}

func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo failed, video_id=%d", videoId)
	}
	return nil
}

// AddVisitCount 播放计数直接在行上自增, 单行更新本身是原子的
func AddVisitCount(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error; err != nil {
		return errors.Wrapf(err, "AddVisitCount failed, video_id=%d", videoId)
	}
	return nil
}

// SearchVideos 标题或描述的大小写不敏感子串过滤, keyword为空表示不过滤
// 排序必须发生在分页之前, video_id作为次级排序键保证分页稳定
func SearchVideos(ctx context.Context, keyword, sortField, sortOrder string, param pagination.Param) ([]*model.Video, int64, error) {
	query := DB.WithContext(ctx).Model(&model.Video{}).Where("is_published = ?", true)
	if keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	switch sortField {
	case "created_at", "visit_count", "duration", "title":
	default:
		sortField = constants.DefaultSortField
	}
	order := " DESC"
	if sortOrder == constants.SortOrderAsc {
		order = " ASC"
	}

	var videos []*model.Video
	if err := query.Order(sortField + order + ", video_id" + order).
		Offset(param.Offset()).Limit(param.Limit()).Find(&videos).Error; err != nil {
		return nil, 0, err
	}
	return videos, count, nil
}

// GetVideosByOwner 获取用户发布的视频, 最新的在最前
func GetVideosByOwner(ctx context.Context, userId int64) ([]*model.Video, error) {
	var videos []*model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Order("created_at DESC, video_id DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// CountVideosByOwner 统计用户的视频总数与播放总量, 无数据时返回0
func CountVideosByOwner(ctx context.Context, userId int64) (videoCount, visitCount int64, err error) {
	if err = DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).Count(&videoCount).Error; err != nil {
		return 0, 0, err
	}
	var total *int64
	if err = DB.WithContext(ctx).Model(&model.Video{}).Where("user_id = ?", userId).
		Select("SUM(visit_count)").Scan(&total).Error; err != nil {
		return 0, 0, err
	}
	if total != nil {
		visitCount = *total
	}
	return videoCount, visitCount, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
