package probe

import (
	"context"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/code"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/types"
	"github.com/yanshicheng/voice-account/common/handler/errorx"
	"github.com/zeromicro/go-zero/core/logx"
)

type StorageCheckLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStorageCheckLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StorageCheckLogic {
	return &StorageCheckLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// StorageCheck 对象存储连通性检查，只读不写
func (l *StorageCheckLogic) StorageCheck() (*types.StorageCheckResponse, error) {
	exists, err := l.svcCtx.Store.BucketExists(l.ctx)
	if err != nil {
		l.Errorf("存储连通性检查失败: %v", err)
		return nil, code.StorageCheckErr
	}
	if !exists {
		return nil, code.BucketNotExistErr
	}

	return &types.StorageCheckResponse{
		Status:  errorx.StatusSuccess,
		Message: "存储服务连接成功",
		Bucket:  l.svcCtx.Config.Storage.BucketName,
	}, nil
}
