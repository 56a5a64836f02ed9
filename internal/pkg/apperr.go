package pkg

import "errors"

// 统一的业务错误种类。repository 把驱动错误翻译成这里的种类，
// service 用 fmt.Errorf("%w: ...") 包装，handler 用 errors.Is 映射状态码。
var (
	ErrInvalid      = errors.New("invalid request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate entry")
	ErrSamePassword = errors.New("same password")
	ErrQuota        = errors.New("tour api quota exhausted")
)
