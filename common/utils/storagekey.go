package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yanshicheng/voice-account/common/vars"
)

// 扩展名到 MIME 类型的固定映射表。
// 内容类型一律由校验过的扩展名推导，不信任客户端声明的 Content-Type。
var audioContentTypes = map[string]string{
	"m4a": "audio/m4a",
	"mp3": "audio/mp3",
	"wav": "audio/wav",
	"aac": "audio/aac",
}

// NormalizeExt 提取并归一化文件扩展名（小写、去点）。
// 无扩展名时返回空串和 false。
func NormalizeExt(filename string) (string, bool) {
	ext := filepath.Ext(filename)
	if ext == "" || ext == "." {
		return "", false
	}
	return strings.ToLower(strings.TrimPrefix(ext, ".")), true
}

// AudioContentType 返回扩展名对应的音频 MIME 类型
func AudioContentType(ext string) (string, bool) {
	ct, ok := audioContentTypes[strings.ToLower(ext)]
	return ct, ok
}

// DeriveStorageKey 计算唯一存储键:
//
//	<user_id>/<user_id>_<YYYYMMDD_HHMMSS>_<8位十六进制随机数>.<ext>
//
// 随机段每次请求重新生成，与内容无关，同一用户同一秒的并发上传也不会碰撞。
// 返回 (文件名, 存储路径)。
func DeriveStorageKey(userID, ext string, now time.Time) (string, string) {
	if userID == "" {
		userID = vars.AnonymousUserId
	}
	timestamp := now.Format(vars.StorageKeyTimeLayout)
	uniqueID := uuid.NewString()[:8]
	filename := fmt.Sprintf("%s_%s_%s.%s", userID, timestamp, uniqueID, strings.ToLower(ext))
	return filename, fmt.Sprintf("%s/%s", userID, filename)
}
