package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/yanshicheng/voice-account/common/handler/errorx"
	"github.com/yanshicheng/voice-account/common/handler/errorx/types"
	"github.com/zeromicro/go-zero/core/logx"
)

// PanicRecoveryMiddleware 全局 panic 恢复，业务 handler panic 时
// 记录堆栈并返回统一的 500 响应，避免进程退出。
func PanicRecoveryMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				logx.WithContext(r.Context()).Errorf("请求处理 panic: %v\n%s", p, debug.Stack())
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(types.Status{
					Status:  errorx.StatusError,
					Message: "服务器内部错误!",
				})
			}
		}()
		next(w, r)
	}
}
