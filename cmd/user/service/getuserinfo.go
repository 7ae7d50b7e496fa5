package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
)

type GetUserInfoService struct {
	ctx  context.Context
	repo UserRepo
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx, repo: dbRepo{}}
}

// GetUserInfo 按id返回公开投影
func (service *GetUserInfoService) GetUserInfo(userId int64) (*model.UserInfo, error) {
	user, err := service.repo.GetUser(service.ctx, userId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.RecordNotFoundErr.WithMessage("user not found")
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return user.Info(), nil
}
