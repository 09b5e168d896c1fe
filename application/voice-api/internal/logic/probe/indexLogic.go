package probe

import (
	"context"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/types"
	"github.com/yanshicheng/voice-account/common/handler/errorx"
	"github.com/yanshicheng/voice-account/common/vars"
	"github.com/zeromicro/go-zero/core/logx"
)

type IndexLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewIndexLogic(ctx context.Context, svcCtx *svc.ServiceContext) *IndexLogic {
	return &IndexLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *IndexLogic) Index() (*types.IndexResponse, error) {
	return &types.IndexResponse{
		Message: vars.ProjectName + " Server",
		Status:  errorx.StatusSuccess,
		Version: vars.ProjectVer,
	}, nil
}
