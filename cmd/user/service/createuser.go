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

// RegisterRequest 凭证由外部协作方产出, 这里原样存储
type RegisterRequest struct {
	UserName   string
	Email      string
	FullName   string
	Credential string
	AvatarUrl  string
	CoverUrl   string
}

type CreateUserService struct {
	ctx  context.Context
	repo UserRepo
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx, repo: dbRepo{}}
}

func (service *CreateUserService) CreateUser(req *RegisterRequest) (*model.User, error) {
	for _, field := range []string{req.UserName, req.Email, req.FullName, req.Credential} {
		if strings.TrimSpace(field) == "" {
			return nil, errno.RequestErr.WithMessage("all fields are required")
		}
	}

	exist, err := service.repo.CheckUserExist(service.ctx, req.UserName, req.Email)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if exist {
		return nil, errno.RecordAlreadyExistErr.WithMessage("user already exists with this username or email")
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateEntityID(),
		UserName:  req.UserName,
		Email:     req.Email,
		FullName:  req.FullName,
		Password:  req.Credential,
		AvatarUrl: req.AvatarUrl,
		CoverUrl:  req.CoverUrl,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.repo.CreateUser(service.ctx, user); err != nil {
		logrus.Errorf("create user failed, user_name=%s, err=%v", req.UserName, err)
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return user, nil
}
