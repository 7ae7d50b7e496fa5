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

// ToggleSubscription 原子地翻转订阅边, 依赖(subscriber_id, channel_id)的唯一索引
func ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (created bool, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := &model.Subscription{
			SubscriptionId: int64(uuid.New().ID()),
			SubscriberId:   subscriberId,
			ChannelId:      channelId,
			CreatedAt:      time.Now().Format(constants.DataFormate),
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(sub)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			created = true
			return nil
		}
		return tx.Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).
			Delete(&model.Subscription{}).Error
	})
	if err != nil {
		return false, errors.Wrapf(err, "ToggleSubscription failed, subscriber=%d, channel=%d", subscriberId, channelId)
	}
	return created, nil
}

func IsSubscriptionExist(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscriber_id = ? AND channel_id = ?", subscriberId, channelId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetSubscriberCount 频道的订阅者数
func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetSubscribedToCount 用户订阅的频道数
func GetSubscribedToCount(ctx context.Context, subscriberId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetSubscriberIdsPaged 频道的订阅者, 按订阅时间倒序
func GetSubscriberIdsPaged(ctx context.Context, channelId, pageNum, pageSize int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).
		Order("created_at DESC, subscription_id DESC").Select("subscriber_id").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// GetSubscribedChannelIdsPaged 用户订阅的频道, 按订阅时间倒序
func GetSubscribedChannelIdsPaged(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).
		Order("created_at DESC, subscription_id DESC").Select("channel_id").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
