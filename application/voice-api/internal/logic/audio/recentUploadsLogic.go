package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/code"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/types"
	"github.com/yanshicheng/voice-account/common/handler/errorx"
	"github.com/yanshicheng/voice-account/common/vars"
	"github.com/zeromicro/go-zero/core/logx"
)

type RecentUploadsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRecentUploadsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecentUploadsLogic {
	return &RecentUploadsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// RecentUploads 按用户返回最近的上传记录，只读
func (l *RecentUploadsLogic) RecentUploads(req *types.RecentUploadsRequest) (*types.RecentUploadsResponse, error) {
	userID := strings.TrimSpace(req.UserId)
	if userID == "" {
		userID = vars.AnonymousUserId
	}
	if err := l.svcCtx.Validator.ValidateVar(userID, "useridtoken"); err != nil {
		return nil, code.UserIdIllegalErr
	}

	key := fmt.Sprintf(recentUploadsKeyFormat, userID)
	rows, err := l.svcCtx.Cache.LrangeCtx(l.ctx, key, 0, l.svcCtx.Config.Upload.RecentListSize-1)
	if err != nil {
		l.Errorf("查询上传记录失败: user=%s, err=%v", userID, err)
		return nil, code.RecentUploadsErr
	}

	records := make([]types.UploadRecord, 0, len(rows))
	for _, row := range rows {
		var record types.UploadRecord
		if err := json.Unmarshal([]byte(row), &record); err != nil {
			// 脏数据跳过，不影响整体结果
			l.Errorf("解析上传记录失败: %v", err)
			continue
		}
		records = append(records, record)
	}

	return &types.RecentUploadsResponse{
		Status:  errorx.StatusSuccess,
		Message: "查询成功",
		Data:    records,
	}, nil
}
