package audio

import (
	"net/http"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/logic/audio"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func UploadAudioHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := audio.NewUploadAudioLogic(r.Context(), svcCtx)
		resp, err := l.UploadAudio(r)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
