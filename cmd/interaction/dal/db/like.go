package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

// ToggleLike 原子地翻转点赞边, 依赖(user_id, target_type, target_id)的唯一索引:
// 插入冲突时改为删除该边, 同一对上的并发toggle由存储层串行化
func ToggleLike(ctx context.Context, userId int64, targetType string, targetId int64) (created bool, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := &model.Like{
			LikeId:     int64(uuid.New().ID()),
			UserId:     userId,
			TargetType: targetType,
			TargetId:   targetId,
			CreatedAt:  time.Now().Format(constants.DataFormate),
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(like)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			created = true
			return nil
		}
		// 边已存在, 本次toggle为取消
		return tx.Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
			Delete(&model.Like{}).Error
	})
	if err != nil {
		return false, errors.Wrapf(err, "ToggleLike failed, user_id=%d, target=%s:%d", userId, targetType, targetId)
	}
	return created, nil
}

func IsLikeExist(ctx context.Context, userId int64, targetType string, targetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userId, targetType, targetId).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetLikeCount 点赞数永远读时聚合, 不维护计数列
func GetLikeCount(ctx context.Context, targetType string, targetId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("target_type = ? AND target_id = ?", targetType, targetId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedVideoIds 用户点赞过的视频, 按点赞时间倒序
func GetLikedVideoIds(ctx context.Context, userId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Where("user_id = ? AND target_type = ?", userId, constants.LikeTargetVideo).
		Order("created_at DESC, like_id DESC").Select("target_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CountVideoLikesByOwner 用户名下所有视频收到的点赞总数
func CountVideoLikesByOwner(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN videos ON videos.video_id = likes.target_id").
		Where("likes.target_type = ? AND videos.user_id = ?", constants.LikeTargetVideo, userId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountCommentLikesByAuthor 用户发表的评论收到的点赞总数
func CountCommentLikesByAuthor(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN comments ON comments.comment_id = likes.target_id").
		Where("likes.target_type = ? AND comments.user_id = ?", constants.LikeTargetComment, userId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountTweetLikesByAuthor 用户发表的推文收到的点赞总数
func CountTweetLikesByAuthor(ctx context.Context, userId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Like{}).
		Joins("JOIN tweets ON tweets.tweet_id = likes.target_id").
		Where("likes.target_type = ? AND tweets.user_id = ?", constants.LikeTargetTweet, userId).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
