package audio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/yanshicheng/voice-account/application/voice-api/internal/code"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/types"
	"github.com/yanshicheng/voice-account/common/handler/errorx"
	"github.com/yanshicheng/voice-account/common/utils"
	"github.com/yanshicheng/voice-account/common/vars"
	"github.com/zeromicro/go-zero/core/logx"
)

// 每个用户的上传记录缓存键
const recentUploadsKeyFormat = "voice-account:uploads:%s"

// 解析 multipart 表单的内存上限，超出部分落盘
const maxParseMemory = 32 << 20

type UploadAudioLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewUploadAudioLogic(ctx context.Context, svcCtx *svc.ServiceContext) *UploadAudioLogic {
	return &UploadAudioLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// UploadAudio 音频摄入流水线: 校验 -> 派生存储键 -> 写入对象存储 -> 返回公开地址。
// 所有校验都在存储 I/O 之前完成，校验失败不产生任何写入。
// 每次请求都派生全新的存储键，相同内容重复上传会生成两个独立对象。
func (l *UploadAudioLogic) UploadAudio(r *http.Request) (*types.UploadAudioResponse, error) {
	if err := r.ParseMultipartForm(maxParseMemory); err != nil {
		return nil, code.ParseFormErr
	}

	parts := r.MultipartForm.File["file"]
	if len(parts) == 0 {
		return nil, code.FileNotFoundErr
	}
	if len(parts) > 1 {
		return nil, code.FileCountErr
	}

	file, handler, err := r.FormFile("file")
	if err != nil {
		return nil, code.FileNotFoundErr
	}
	defer func(file multipart.File) {
		if closeErr := file.Close(); closeErr != nil {
			l.Errorf("关闭上传文件失败: %v", closeErr)
		}
	}(file)

	if handler.Filename == "" {
		return nil, code.FileNameEmptyErr
	}

	ext, ok := utils.NormalizeExt(handler.Filename)
	if !ok || !l.extAllowed(ext) {
		return nil, code.FileTypeNotAllowed
	}

	maxSize := l.svcCtx.Config.Upload.MaxFileSize
	if handler.Size > maxSize {
		return nil, code.FileSizeExceeded
	}

	userID := strings.TrimSpace(r.FormValue("user_id"))
	if userID == "" {
		userID = vars.AnonymousUserId
	}
	// user_id 会成为存储路径前缀，必须先过 useridtoken 规则
	if err := l.svcCtx.Validator.ValidateVar(userID, "useridtoken"); err != nil {
		return nil, code.UserIdIllegalErr
	}

	data, err := readFile(file, handler.Size)
	if err != nil {
		l.Errorf("读取上传文件失败: %v", err)
		return nil, code.FileReadErr
	}
	if len(data) == 0 {
		return nil, code.FileEmptyErr
	}
	if int64(len(data)) > maxSize {
		return nil, code.FileSizeExceeded
	}

	// 内容类型由校验过的扩展名推导，客户端声明的 Content-Type 不参与
	contentType, ok := utils.AudioContentType(ext)
	if !ok {
		contentType = "audio/" + ext
	}

	filename, path := utils.DeriveStorageKey(userID, ext, time.Now())

	if err := l.svcCtx.Store.PutObject(l.ctx, path, data, contentType); err != nil {
		// 存储失败属于服务端错误，详情只记日志，客户端拿到通用提示
		l.Errorf("写入对象存储失败: path=%s, size=%d, err=%v", path, len(data), err)
		return nil, code.FileUploadErr
	}

	respData := &types.UploadAudioData{
		Url:         l.svcCtx.Store.PublicURL(path),
		Filename:    filename,
		Path:        path,
		Size:        int64(len(data)),
		ContentType: contentType,
	}

	l.recordUpload(userID, respData)

	l.Infof("文件上传成功: user=%s, path=%s, size=%d", userID, path, respData.Size)
	return &types.UploadAudioResponse{
		Status:  errorx.StatusSuccess,
		Message: "文件上传成功",
		Data:    respData,
	}, nil
}

func (l *UploadAudioLogic) extAllowed(ext string) bool {
	for _, allowed := range l.svcCtx.Config.Upload.AllowedExtensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

// readFile 按声明大小一次读完文件内容
func readFile(file io.Reader, size int64) ([]byte, error) {
	buf := make([]byte, size)
	n, err := io.ReadFull(file, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}
	if int64(n) < size {
		buf = buf[:n]
	}
	return buf, nil
}

// recordUpload 把上传记录写进缓存，尽力而为，失败只记日志不影响响应
func (l *UploadAudioLogic) recordUpload(userID string, data *types.UploadAudioData) {
	record := types.UploadRecord{
		Url:         data.Url,
		Filename:    data.Filename,
		Path:        data.Path,
		Size:        data.Size,
		ContentType: data.ContentType,
		UploadedAt:  time.Now().Format(time.RFC3339),
	}
	payload, err := json.Marshal(record)
	if err != nil {
		l.Errorf("序列化上传记录失败: %v", err)
		return
	}

	key := fmt.Sprintf(recentUploadsKeyFormat, userID)
	if _, err := l.svcCtx.Cache.LpushCtx(l.ctx, key, string(payload)); err != nil {
		l.Errorf("写入上传记录失败: user=%s, err=%v", userID, err)
		return
	}
	keep := int64(l.svcCtx.Config.Upload.RecentListSize)
	if err := l.svcCtx.Cache.LtrimCtx(l.ctx, key, 0, keep-1); err != nil {
		l.Errorf("裁剪上传记录失败: user=%s, err=%v", userID, err)
	}
}
