package owner

import (
	"vidtube.com/pkg/errno"
)

// Assert 校验资源归属, 调用方必须在校验前重新加载实体避免使用过期的归属信息
func Assert(ownerId, principalId int64) error {
	if principalId <= 0 {
		return errno.AuthorizationFailedErr.WithMessage("not authenticated")
	}
	if ownerId != principalId {
		return errno.AuthorizationFailedErr.WithMessage("you are not the owner of this resource")
	}
	return nil
}
