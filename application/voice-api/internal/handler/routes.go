package handler

import (
	"net/http"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/handler/audio"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/handler/probe"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	// 存活与连通性探针，只读
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: probe.IndexHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/health",
				Handler: probe.HealthCheckHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/hello",
				Handler: probe.ApiHelloHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/storage-check",
				Handler: probe.StorageCheckHandler(serverCtx),
			},
		},
	)

	// 音频摄入
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/api/upload-audio",
				Handler: audio.UploadAudioHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/api/recent-uploads",
				Handler: audio.RecentUploadsHandler(serverCtx),
			},
		},
	)
}
