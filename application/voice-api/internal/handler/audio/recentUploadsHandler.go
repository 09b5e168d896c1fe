package audio

import (
	"net/http"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/code"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/logic/audio"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func RecentUploadsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RecentUploadsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, code.ParseFormErr)
			return
		}

		l := audio.NewRecentUploadsLogic(r.Context(), svcCtx)
		resp, err := l.RecentUploads(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
