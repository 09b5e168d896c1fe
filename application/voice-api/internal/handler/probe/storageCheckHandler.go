package probe

import (
	"net/http"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/logic/probe"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func StorageCheckHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := probe.NewStorageCheckLogic(r.Context(), svcCtx)
		resp, err := l.StorageCheck()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
