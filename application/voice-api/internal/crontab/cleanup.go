package crontab

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/config"
	"github.com/yanshicheng/voice-account/common/storage"
	"github.com/zeromicro/go-zero/core/logx"
)

// 单次清理的整体超时
const sweepTimeout = 10 * time.Minute

// CleanupTask 定期删除匿名前缀下超过保留期的录音对象。
// 只动 Prefix 范围内的对象，具名用户的数据不在清理范围。
type CleanupTask struct {
	store storage.ObjectStore
	conf  config.RetentionConf
	cron  *cron.Cron
	// clock 可注入，测试用
	clock func() time.Time
}

func NewCleanupTask(store storage.ObjectStore, conf config.RetentionConf) *CleanupTask {
	return &CleanupTask{
		store: store,
		conf:  conf,
		clock: time.Now,
	}
}

// MustStart 注册并启动定时清理，cron 表达式非法时 panic
func (t *CleanupTask) MustStart() {
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cron.DefaultLogger)),
	)
	if _, err := c.AddFunc(t.conf.Schedule, t.run); err != nil {
		panic(fmt.Sprintf("注册清理任务失败: %v", err))
	}
	t.cron = c
	c.Start()
	logx.Infof("匿名上传清理任务已启动, schedule=%s, maxAge=%dh, prefix=%s",
		t.conf.Schedule, t.conf.MaxAgeHours, t.conf.Prefix)
}

// Stop 停止调度并等待运行中的清理结束
func (t *CleanupTask) Stop() {
	if t.cron == nil {
		return
	}
	ctx := t.cron.Stop()
	<-ctx.Done()
	logx.Info("匿名上传清理任务已停止")
}

func (t *CleanupTask) run() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	removed, err := t.sweep(ctx)
	if err != nil {
		logx.Errorf("匿名上传清理失败: %v", err)
		return
	}
	logx.Infof("匿名上传清理完成, removed=%d", removed)
}

// sweep 删除前缀下修改时间早于保留期的对象，返回删除数量。
// 单个对象删除失败只记日志，不中断整轮清理。
func (t *CleanupTask) sweep(ctx context.Context) (int, error) {
	cutoff := t.clock().Add(-time.Duration(t.conf.MaxAgeHours) * time.Hour)

	objects, err := t.store.ListObjects(ctx, t.conf.Prefix)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, obj := range objects {
		if obj.LastModified.After(cutoff) {
			continue
		}
		if err := t.store.RemoveObject(ctx, obj.Key); err != nil {
			logx.Errorf("删除过期对象失败: %s, %v", obj.Key, err)
			continue
		}
		removed++
	}
	return removed, nil
}
