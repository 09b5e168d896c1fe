package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// 上传对象的缓存策略，与历史行为保持一致
const objectCacheControl = "max-age=3600"

type minioStore struct {
	client *minio.Client
	conf   Conf
}

// MustNewMinioStore 创建 MinIO 存储客户端，配置非法时 panic。
// minio.New 不发起网络连接，可达性通过 BucketExists 检查。
func MustNewMinioStore(c Conf) ObjectStore {
	store, err := NewMinioStore(c)
	if err != nil {
		panic(err)
	}
	return store
}

func NewMinioStore(c Conf) (ObjectStore, error) {
	if c.Endpoint == "" || c.BucketName == "" {
		return nil, errors.New("storage 配置缺少 Endpoint 或 BucketName")
	}
	client, err := minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKeyId, c.SecretAccessKey, ""),
		Secure: c.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "初始化 MinIO 客户端失败")
	}
	return &minioStore{
		client: client,
		conf:   c,
	}, nil
}

func (s *minioStore) PutObject(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, s.conf.BucketName, key,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType:  contentType,
			CacheControl: objectCacheControl,
		})
	if err != nil {
		return errors.Wrapf(err, "写入对象失败: %s", key)
	}
	return nil
}

func (s *minioStore) PublicURL(key string) string {
	base := strings.TrimRight(s.conf.EndpointProxy, "/")
	return fmt.Sprintf("%s/%s/%s", base, s.conf.BucketName, key)
}

func (s *minioStore) BucketExists(ctx context.Context) (bool, error) {
	exists, err := s.client.BucketExists(ctx, s.conf.BucketName)
	if err != nil {
		return false, errors.Wrapf(err, "检查桶失败: %s", s.conf.BucketName)
	}
	return exists, nil
}

func (s *minioStore) ListObjects(ctx context.Context, prefix string) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	ch := s.client.ListObjects(ctx, s.conf.BucketName, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})
	for obj := range ch {
		if obj.Err != nil {
			return nil, errors.Wrapf(obj.Err, "列举对象失败: %s", prefix)
		}
		objects = append(objects, ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

func (s *minioStore) RemoveObject(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.conf.BucketName, key, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "删除对象失败: %s", key)
	}
	return nil
}
