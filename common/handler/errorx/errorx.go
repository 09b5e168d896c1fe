package errorx

import (
	"errors"
	"net/http"
)

const (
	// StatusError 错误响应的 status 字段取值
	StatusError = "error"
	// StatusSuccess 成功响应的 status 字段取值
	StatusSuccess = "success"
)

// CodeError 业务错误，携带业务码、HTTP 状态码与提示信息。
// 校验类错误使用 New（HTTP 400），系统类错误使用 NewSystem（HTTP 500）。
type CodeError struct {
	code       int
	httpStatus int
	message    string
}

// 未识别错误统一按系统错误返回，避免内部细节泄漏给调用方
var unknownError = NewSystem(100000, "服务器内部错误!")

// New 创建客户端校验类错误，HTTP 状态码 400
func New(code int, message string) *CodeError {
	return &CodeError{
		code:       code,
		httpStatus: http.StatusBadRequest,
		message:    message,
	}
}

// NewSystem 创建服务端系统类错误，HTTP 状态码 500
func NewSystem(code int, message string) *CodeError {
	return &CodeError{
		code:       code,
		httpStatus: http.StatusInternalServerError,
		message:    message,
	}
}

// Msg 创建不带业务码的校验类错误
func Msg(message string) *CodeError {
	return New(100001, message)
}

// SysMsg 创建不带业务码的系统类错误
func SysMsg(message string) *CodeError {
	return NewSystem(100002, message)
}

func (e *CodeError) Error() string {
	return e.message
}

func (e *CodeError) Code() int {
	return e.code
}

func (e *CodeError) Message() string {
	return e.message
}

func (e *CodeError) HTTPStatus() int {
	return e.httpStatus
}

// CodeFromError 从错误链中提取 CodeError，非 CodeError 一律视为系统错误
func CodeFromError(err error) *CodeError {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce
	}
	return unknownError
}
