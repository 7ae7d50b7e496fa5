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

func CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	if err := DB.WithContext(ctx).Create(tweet).Error; err != nil {
		return errors.Wrapf(err, "CreateTweet failed, user_id=%d", tweet.UserId)
	}
	return nil
}

func GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	tweet := &model.Tweet{}
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).First(tweet).Error; err != nil {
		return nil, err
	}
	return tweet, nil
}

func IsTweetExist(ctx context.Context, tweetId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func UpdateTweet(ctx context.Context, tweetId int64, content string) error {
	updates := map[string]interface{}{
		"content":    content,
		"updated_at": time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("tweet_id = ?", tweetId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateTweet failed, tweet_id=%d", tweetId)
	}
	return nil
}

func DeleteTweet(ctx context.Context, tweetId int64) error {
	if err := DB.WithContext(ctx).Where("tweet_id = ?", tweetId).Delete(&model.Tweet{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteTweet failed, tweet_id=%d", tweetId)
	}
	return nil
}

// GetTweetsByAuthor 用户的推文, 最新的在最前
func GetTweetsByAuthor(ctx context.Context, userId int64, param pagination.Param) ([]*model.Tweet, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	var tweets []*model.Tweet
	if err := DB.WithContext(ctx).Model(&model.Tweet{}).Where("user_id = ?", userId).
		Order("created_at DESC, tweet_id DESC").
		Offset(param.Offset()).Limit(param.Limit()).Find(&tweets).Error; err != nil {
		return nil, 0, err
	}
	return tweets, count, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
