package svc

import (
	"github.com/mcuadros/go-defaults"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/config"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/crontab"
	"github.com/yanshicheng/voice-account/common/storage"
	"github.com/yanshicheng/voice-account/common/verify"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/proc"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

// 内置默认的扩展名白名单
var defaultAllowedExtensions = []string{"m4a", "mp3", "wav", "aac"}

type ServiceContext struct {
	Config    config.Config
	Store     storage.ObjectStore
	Cache     *redis.Redis
	Validator *verify.ValidatorInstance
	Cleanup   *crontab.CleanupTask
}

func NewServiceContext(c config.Config) *ServiceContext {
	defaults.SetDefaults(&c.Upload)
	defaults.SetDefaults(&c.Retention)
	if len(c.Upload.AllowedExtensions) == 0 {
		c.Upload.AllowedExtensions = defaultAllowedExtensions
	}

	validator, err := verify.InitValidator(verify.LocaleZH)
	if err != nil {
		panic(err)
	}

	store := storage.MustNewMinioStore(c.Storage)
	rdb := redis.MustNewRedis(c.Cache)

	svcCtx := &ServiceContext{
		Config:    c,
		Store:     store,
		Cache:     rdb,
		Validator: validator,
	}

	if c.Retention.Enabled {
		cleanup := crontab.NewCleanupTask(store, c.Retention)
		cleanup.MustStart()
		proc.AddShutdownListener(cleanup.Stop)
		svcCtx.Cleanup = cleanup
		logx.Info("匿名上传保留策略已启用")
	}

	return svcCtx
}
