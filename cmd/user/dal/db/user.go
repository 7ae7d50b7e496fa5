package db

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func CreateUser(ctx context.Context, user *model.User) error {
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed, user_name=%s", user.UserName)
	}
	return nil
}

func GetUser(ctx context.Context, userId int64) (*model.User, error) {
	user := &model.User{}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByUserName 用户名大小写不敏感
func GetUserByUserName(ctx context.Context, userName string) (*model.User, error) {
	user := &model.User{}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("LOWER(user_name) = LOWER(?)", userName).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUserExist 检查用户名或邮箱是否已被占用
func CheckUserExist(ctx context.Context, userName, email string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).
		Where("LOWER(user_name) = LOWER(?) OR email = ?", userName, email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func IsUserExist(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateUser 部分更新, updates只携带要修改的列
func UpdateUser(ctx context.Context, userId int64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateUser failed, user_id=%d", userId)
	}
	return nil
}

func DeleteUser(ctx context.Context, userId int64) error {
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.User{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteUser failed, user_id=%d", userId)
	}
	return nil
}

// 对于视图内嵌作者的批量查询
func GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	var users []*model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id IN (?)", userIds).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpsertWatchRecord 记录观看, 重复观看同一视频只更新观看时间使其回到最前
func UpsertWatchRecord(ctx context.Context, record *model.WatchRecord) error {
	if err := DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "video_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"watch_time": record.WatchTime}),
	}).Create(record).Error; err != nil {
		return errors.Wrapf(err, "UpsertWatchRecord failed, user_id=%d", record.UserId)
	}
	return nil
}

// GetWatchHistory 最近观看的在最前
func GetWatchHistory(ctx context.Context, userId int64) ([]*model.WatchRecord, error) {
	var records []*model.WatchRecord
	if err := DB.WithContext(ctx).Model(&model.WatchRecord{}).Where("user_id = ?", userId).
		Order("watch_time DESC, watch_record_id DESC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
