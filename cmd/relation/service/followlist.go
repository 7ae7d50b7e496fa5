package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/pagination"
)

type FollowListService struct {
	ctx  context.Context
	repo RelationRepo
}

func NewFollowListService(ctx context.Context) *FollowListService {
	return &FollowListService{ctx: ctx, repo: dbRepo{}}
}

// SubscriberList 频道的订阅者列表, 公开投影
func (service *FollowListService) SubscriberList(channelId, pageNum, pageSize int64) ([]*model.UserInfo, error) {
	exist, err := service.repo.IsUserExist(service.ctx, channelId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("channel not found")
	}

	param := pagination.Normalize(pageNum, pageSize)
	ids, err := service.repo.GetSubscriberIdsPaged(service.ctx, channelId, param.PageNum, param.PageSize)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return service.composeUserInfos(ids)
}

// SubscribedChannelList 用户订阅的频道列表, 公开投影
func (service *FollowListService) SubscribedChannelList(subscriberId, pageNum, pageSize int64) ([]*model.UserInfo, error) {
	exist, err := service.repo.IsUserExist(service.ctx, subscriberId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	param := pagination.Normalize(pageNum, pageSize)
	ids, err := service.repo.GetSubscribedChannelIdsPaged(service.ctx, subscriberId, param.PageNum, param.PageSize)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return service.composeUserInfos(ids)
}

// composeUserInfos 保持边的枚举顺序装配公开投影
func (service *FollowListService) composeUserInfos(ids []int64) ([]*model.UserInfo, error) {
	if len(ids) == 0 {
		return []*model.UserInfo{}, nil
	}
	users, err := service.repo.GetUsersByIds(service.ctx, ids)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	userById := make(map[int64]*model.User, len(users))
	for _, u := range users {
		userById[u.UserId] = u
	}
	infos := make([]*model.UserInfo, 0, len(ids))
	for _, id := range ids {
		if u, ok := userById[id]; ok {
			infos = append(infos, u.Info())
		}
	}
	return infos, nil
}
