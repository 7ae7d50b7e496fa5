package owner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vidtube.com/pkg/errno"
)

func TestAssert(t *testing.T) {
	assert.NoError(t, Assert(100, 100))

	err := Assert(100, 200)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)

	// 未认证的主体同样拒绝
	err = Assert(100, 0)
	assert.Error(t, err)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)
}
