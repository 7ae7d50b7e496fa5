package errno

import (
	"errors"
	"fmt"
)

const (
	SuccessCode             = 0
	ServiceErrCode          = 10001
	RequestErrCode          = 10002
	RecordNotFoundErrCode   = 10003
	RecordAlreadyExistCode  = 10004
	AuthorizationFailedCode = 10005
	MysqlErrCode            = 10006
	RedisErrCode            = 10007
)

type ErrNo struct {
	ErrCode int64
	ErrMsg  string
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, err_msg=%s", e.ErrCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "Success")
	ServiceErr             = NewErrNo(ServiceErrCode, "Service is unable to start successfully")
	RequestErr             = NewErrNo(RequestErrCode, "Wrong request parameter")
	RecordNotFoundErr      = NewErrNo(RecordNotFoundErrCode, "Record not found")
	RecordAlreadyExistErr  = NewErrNo(RecordAlreadyExistCode, "Record already exists")
	AuthorizationFailedErr = NewErrNo(AuthorizationFailedCode, "Authorization failed")
	MysqlErr               = NewErrNo(MysqlErrCode, "Mysql error")
	RedisErr               = NewErrNo(RedisErrCode, "Redis error")
)

// ConvertErr 将普通error转换为ErrNo, 保留已是ErrNo的错误码
func ConvertErr(err error) ErrNo {
	errNo := ErrNo{}
	if errors.As(err, &errNo) {
		return errNo
	}
	s := ServiceErr
	s.ErrMsg = err.Error()
	return s
}
