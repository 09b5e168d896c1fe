package config

import (
	"github.com/yanshicheng/voice-account/common/storage"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf
	Cache     redis.RedisConf
	Storage   storage.Conf
	Upload    UploadConf    `json:",optional"`
	Retention RetentionConf `json:",optional"`
}

// UploadConf 上传约束，零值字段由 go-defaults 填充默认值，
// 测试可以直接构造小限额的配置，无需重启进程。
type UploadConf struct {
	// MaxFileSize 单个文件的字节数上限，默认 50 MiB
	MaxFileSize int64 `json:",optional" default:"52428800"`
	// AllowedExtensions 允许的扩展名，为空时取内置默认 m4a/mp3/wav/aac
	AllowedExtensions []string `json:",optional"`
	// RecentListSize 每个用户保留的上传记录条数
	RecentListSize int `json:",optional" default:"50"`
}

// RetentionConf 匿名上传的保留策略，默认关闭
type RetentionConf struct {
	Enabled bool `json:",optional"`
	// Schedule cron 表达式（秒级），默认每天 04:00
	Schedule string `json:",optional" default:"0 0 4 * * *"`
	// MaxAgeHours 对象保留时长，默认 30 天
	MaxAgeHours int `json:",optional" default:"720"`
	// Prefix 清理范围，只动匿名前缀
	Prefix string `json:",optional" default:"anonymous/"`
}
