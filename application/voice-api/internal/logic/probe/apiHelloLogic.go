package probe

import (
	"context"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/types"
	"github.com/yanshicheng/voice-account/common/vars"
	"github.com/zeromicro/go-zero/core/logx"
)

type ApiHelloLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewApiHelloLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ApiHelloLogic {
	return &ApiHelloLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ApiHelloLogic) ApiHello() (*types.HelloResponse, error) {
	return &types.HelloResponse{
		Message: "hello " + l.svcCtx.Config.Name,
		Version: vars.ProjectVer,
		Service: vars.ProjectName + " API",
	}, nil
}
