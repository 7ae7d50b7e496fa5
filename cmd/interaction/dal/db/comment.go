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

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed, video_id=%d", comment.VideoId)
	}
	return nil
}

func GetComment(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func IsCommentExist(ctx context.Context, commentId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func UpdateComment(ctx context.Context, commentId int64, content string) error {
	updates := map[string]interface{}{
		"content":    content,
		"updated_at": time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateComment failed, comment_id=%d", commentId)
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteComment failed, comment_id=%d", commentId)
	}
	return nil
}

// GetVideoComments 获取视频的评论, 最新的在最前
func GetVideoComments(ctx context.Context, videoId int64, param pagination.Param) ([]*model.Comment, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var comments []*model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).
		Order("created_at DESC, comment_id DESC").
		Offset(param.Offset()).Limit(param.Limit()).Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, count, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
