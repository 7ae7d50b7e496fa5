package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/tweet/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/owner"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

const MaxTweetLength = 280

// TweetRepo 推文实体的存储契约
type TweetRepo interface {
	IsUserExist(ctx context.Context, userId int64) (bool, error)
	CreateTweet(ctx context.Context, tweet *model.Tweet) error
	GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error)
	UpdateTweet(ctx context.Context, tweetId int64, content string) error
	DeleteTweet(ctx context.Context, tweetId int64) error
	GetTweetsByAuthor(ctx context.Context, userId int64, param pagination.Param) ([]*model.Tweet, int64, error)
}

type dbRepo struct{}

func (dbRepo) IsUserExist(ctx context.Context, userId int64) (bool, error) {
	return userdb.IsUserExist(ctx, userId)
}

func (dbRepo) CreateTweet(ctx context.Context, tweet *model.Tweet) error {
	return db.CreateTweet(ctx, tweet)
}

func (dbRepo) GetTweet(ctx context.Context, tweetId int64) (*model.Tweet, error) {
	return db.GetTweet(ctx, tweetId)
}

func (dbRepo) UpdateTweet(ctx context.Context, tweetId int64, content string) error {
	return db.UpdateTweet(ctx, tweetId, content)
}

func (dbRepo) DeleteTweet(ctx context.Context, tweetId int64) error {
	return db.DeleteTweet(ctx, tweetId)
}

func (dbRepo) GetTweetsByAuthor(ctx context.Context, userId int64, param pagination.Param) ([]*model.Tweet, int64, error) {
	return db.GetTweetsByAuthor(ctx, userId, param)
}

type TweetService struct {
	ctx  context.Context
	repo TweetRepo
}

func NewTweetService(ctx context.Context) *TweetService {
	return &TweetService{ctx: ctx, repo: dbRepo{}}
}

func (service *TweetService) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("tweet content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxTweetLength {
		return errno.RequestErr.WithMessage("tweet too long, maximum 280 characters allowed")
	}
	return nil
}

func (service *TweetService) CreateTweet(principalId int64, content string) (*model.Tweet, error) {
	if err := service.validateContent(content); err != nil {
		return nil, err
	}
	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	now := time.Now().Format(constants.DataFormate)
	tweet := &model.Tweet{
		TweetId:   utils.GenerateEntityID(),
		UserId:    principalId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.repo.CreateTweet(service.ctx, tweet); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return tweet, nil
}

// UpdateTweet 修改前重新加载实体做归属校验
func (service *TweetService) UpdateTweet(principalId, tweetId int64, content string) error {
	if err := service.validateContent(content); err != nil {
		return err
	}
	tweet, err := service.repo.GetTweet(service.ctx, tweetId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return errno.RecordNotFoundErr.WithMessage("tweet not found")
		}
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if err := owner.Assert(tweet.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.UpdateTweet(service.ctx, tweetId, content); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

func (service *TweetService) DeleteTweet(principalId, tweetId int64) error {
	tweet, err := service.repo.GetTweet(service.ctx, tweetId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return errno.RecordNotFoundErr.WithMessage("tweet not found")
		}
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if err := owner.Assert(tweet.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.DeleteTweet(service.ctx, tweetId); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

// UserTweets 用户的推文, 最新的在最前
func (service *TweetService) UserTweets(userId, pageNum, pageSize int64) ([]*model.Tweet, int64, error) {
	exist, err := service.repo.IsUserExist(service.ctx, userId)
	if err != nil {
		return nil, 0, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, 0, errno.RecordNotFoundErr.WithMessage("user not found")
	}
	param := pagination.Normalize(pageNum, pageSize)
	tweets, count, err := service.repo.GetTweetsByAuthor(service.ctx, userId, param)
	if err != nil {
		return nil, 0, errno.MysqlErr.WithMessage(err.Error())
	}
	return tweets, count, nil
}
