package service

import (
	"context"
	"strings"

	"vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/owner"
)

type UpdateUserService struct {
	ctx  context.Context
	repo UserRepo
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx, repo: dbRepo{}}
}

// UpdateAccount 修改资料, 用户只能修改自己
func (service *UpdateUserService) UpdateAccount(principalId, userId int64, fullName, email string) error {
	user, err := service.repo.GetUser(service.ctx, userId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return errno.RecordNotFoundErr.WithMessage("user not found")
		}
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if err := owner.Assert(user.UserId, principalId); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(fullName) != "" {
		updates["full_name"] = fullName
	}
	if strings.TrimSpace(email) != "" {
		updates["email"] = email
	}
	if len(updates) == 0 {
		return errno.RequestErr.WithMessage("nothing to update")
	}

	if err := service.repo.UpdateUser(service.ctx, userId, updates); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

// UpdateAvatar avatar为外部blob存储产出的引用, 原样保存
func (service *UpdateUserService) UpdateAvatar(principalId, userId int64, avatarUrl string) error {
	if strings.TrimSpace(avatarUrl) == "" {
		return errno.RequestErr.WithMessage("avatar reference is required")
	}
	return service.updateRef(principalId, userId, map[string]interface{}{"avatar_url": avatarUrl})
}

// UpdateCoverImage cover为外部blob存储产出的引用, 原样保存
func (service *UpdateUserService) UpdateCoverImage(principalId, userId int64, coverUrl string) error {
	if strings.TrimSpace(coverUrl) == "" {
		return errno.RequestErr.WithMessage("cover image reference is required")
	}
	return service.updateRef(principalId, userId, map[string]interface{}{"cover_url": coverUrl})
}

func (service *UpdateUserService) updateRef(principalId, userId int64, updates map[string]interface{}) error {
	user, err := service.repo.GetUser(service.ctx, userId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return errno.RecordNotFoundErr.WithMessage("user not found")
		}
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if err := owner.Assert(user.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.UpdateUser(service.ctx, userId, updates); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

type DeleteUserService struct {
	ctx  context.Context
	repo UserRepo
}

func NewDeleteUserService(ctx context.Context) *DeleteUserService {
	return &DeleteUserService{ctx: ctx, repo: dbRepo{}}
}

func (service *DeleteUserService) DeleteUser(principalId, userId int64) error {
	user, err := service.repo.GetUser(service.ctx, userId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return errno.RecordNotFoundErr.WithMessage("user not found")
		}
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if err := owner.Assert(user.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.DeleteUser(service.ctx, userId); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}
