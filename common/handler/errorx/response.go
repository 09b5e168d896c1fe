package errorx

import (
	"github.com/yanshicheng/voice-account/common/handler/errorx/types"
)

// ErrHandler 全局错误处理，通过 httpx.SetErrorHandler 注册。
// 校验类错误返回 400，系统类错误返回 500，响应体固定为 {status, message}。
func ErrHandler(err error) (int, any) {
	code := CodeFromError(err)
	return code.HTTPStatus(), types.Status{
		Status:  StatusError,
		Message: code.Message(),
	}
}
