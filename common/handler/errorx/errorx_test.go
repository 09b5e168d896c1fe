package errorx

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanshicheng/voice-account/common/handler/errorx/types"
)

func TestNewIsClientError(t *testing.T) {
	err := New(201101, "没有找到文件!")
	assert.Equal(t, 201101, err.Code())
	assert.Equal(t, "没有找到文件!", err.Message())
	assert.Equal(t, "没有找到文件!", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPStatus())
}

func TestNewSystemIsServerError(t *testing.T) {
	err := NewSystem(201201, "文件上传失败!")
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus())
}

func TestCodeFromError(t *testing.T) {
	base := New(201104, "不支持的文件类型!")

	// 错误链中包着 CodeError 时原样取出
	wrapped := errors.Wrap(base, "校验失败")
	ce := CodeFromError(wrapped)
	require.NotNil(t, ce)
	assert.Equal(t, 201104, ce.Code())
	assert.Equal(t, http.StatusBadRequest, ce.HTTPStatus())

	// 非 CodeError 一律按系统错误处理，不泄漏内部信息
	ce = CodeFromError(errors.New("dial tcp: connection refused"))
	assert.Equal(t, 100000, ce.Code())
	assert.Equal(t, "服务器内部错误!", ce.Message())
	assert.Equal(t, http.StatusInternalServerError, ce.HTTPStatus())
}

func TestErrHandler(t *testing.T) {
	status, body := ErrHandler(New(201101, "没有找到文件!"))
	assert.Equal(t, http.StatusBadRequest, status)
	resp, ok := body.(types.Status)
	require.True(t, ok)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "没有找到文件!", resp.Message)

	status, body = ErrHandler(errors.New("redis: connection pool exhausted"))
	assert.Equal(t, http.StatusInternalServerError, status)
	resp = body.(types.Status)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "服务器内部错误!", resp.Message)
}
