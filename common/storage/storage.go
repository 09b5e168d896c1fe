package storage

import (
	"context"
	"time"
)

// Conf 对象存储配置，Endpoint 为服务内网地址，
// EndpointProxy 为对外可访问的代理地址，用于拼接公开 URL。
type Conf struct {
	Endpoint        string
	EndpointProxy   string
	AccessKeyId     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool `json:",optional"`
}

// ObjectInfo 桶内对象的元信息
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStore 对象存储抽象，写入以 key 寻址，写入成功后对象可通过公开 URL 访问。
// 实现要求按 key 原子写入，失败不留下可见的半成品对象。
type ObjectStore interface {
	// PutObject 将 data 以 contentType 写入 key，整体成功或整体失败
	PutObject(ctx context.Context, key string, data []byte, contentType string) error

	// PublicURL 返回 key 对应的公开访问地址
	PublicURL(key string) string

	// BucketExists 检查配置的桶是否可达，只读
	BucketExists(ctx context.Context) (bool, error)

	// ListObjects 列出指定前缀下的所有对象
	ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error)

	// RemoveObject 删除指定 key 的对象
	RemoveObject(ctx context.Context, key string) error
}
