package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
)

const (
	ToggleStateCreated = "created"
	ToggleStateRemoved = "removed"
)

// ToggleResult 一次toggle的结果, State标明本次是建边还是删边
type ToggleResult struct {
	State      string `json:"state"`
	UserId     int64  `json:"user_id"`
	TargetType string `json:"target_type"`
	TargetId   int64  `json:"target_id"`
}

type ToggleLikeService struct {
	ctx  context.Context
	repo LikeRepo
}

func NewToggleLikeService(ctx context.Context) *ToggleLikeService {
	return &ToggleLikeService{ctx: ctx, repo: dbRepo{}}
}

// ToggleLike 点赞/取消点赞, principalId为已认证主体, 必须与actorId一致
// 所有校验先于任何写入, 失败时不产生副作用
func (service *ToggleLikeService) ToggleLike(principalId, actorId int64, targetType string, targetId int64) (*ToggleResult, error) {
	if principalId != actorId {
		return nil, errno.AuthorizationFailedErr.WithMessage("principal does not match actor")
	}

	switch targetType {
	case constants.LikeTargetVideo, constants.LikeTargetComment, constants.LikeTargetTweet:
	default:
		return nil, errno.RequestErr.WithMessage("unknown like target type")
	}

	exist, err := service.repo.IsUserExist(service.ctx, actorId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	if err := service.checkTargetExist(targetType, targetId); err != nil {
		return nil, err
	}

	created, err := service.repo.ToggleLike(service.ctx, actorId, targetType, targetId)
	if err != nil {
		logrus.Errorf("toggle like failed, user_id=%d, target=%s:%d, err=%v", actorId, targetType, targetId, err)
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	// 先失效计数缓存再返回, 保证随后的读重新聚合
	cache.Counter().Invalidate(service.ctx, cache.LikeCountKey(targetType, targetId))

	result := &ToggleResult{
		State:      ToggleStateRemoved,
		UserId:     actorId,
		TargetType: targetType,
		TargetId:   targetId,
	}
	if created {
		result.State = ToggleStateCreated
	}
	return result, nil
}

func (service *ToggleLikeService) checkTargetExist(targetType string, targetId int64) error {
	var (
		exist bool
		err   error
	)
	switch targetType {
	case constants.LikeTargetVideo:
		exist, err = service.repo.IsVideoExist(service.ctx, targetId)
	case constants.LikeTargetComment:
		exist, err = service.repo.IsCommentExist(service.ctx, targetId)
	case constants.LikeTargetTweet:
		exist, err = service.repo.IsTweetExist(service.ctx, targetId)
	}
	if err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return errno.RecordNotFoundErr.WithMessage("like target not found")
	}
	return nil
}

// GetLikeCount 读时聚合, 命中缓存则跳过SQL
func (service *ToggleLikeService) GetLikeCount(targetType string, targetId int64) (int64, error) {
	key := cache.LikeCountKey(targetType, targetId)
	if count, ok := cache.Counter().GetCount(service.ctx, key); ok {
		return count, nil
	}
	count, err := service.repo.GetLikeCount(service.ctx, targetType, targetId)
	if err != nil {
		return 0, errno.MysqlErr.WithMessage(err.Error())
	}
	cache.Counter().SetCount(service.ctx, key, count)
	return count, nil
}
