package audio

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/config"
	"github.com/yanshicheng/voice-account/application/voice-api/internal/svc"
	"github.com/yanshicheng/voice-account/common/handler/errorx"
	"github.com/yanshicheng/voice-account/common/storage"
	"github.com/yanshicheng/voice-account/common/verify"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func TestMain(m *testing.M) {
	// 与 voice.go 保持一致的全局错误处理
	httpx.SetErrorHandler(errorx.ErrHandler)
	os.Exit(m.Run())
}

type fakeStore struct {
	mu     sync.Mutex
	putErr error
	keys   []string
}

func (s *fakeStore) PutObject(_ context.Context, key string, _ []byte, _ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.keys = append(s.keys, key)
	return nil
}

func (s *fakeStore) PublicURL(key string) string {
	return "http://files.local/user-audio/" + key
}

func (s *fakeStore) BucketExists(context.Context) (bool, error) {
	return true, nil
}

func (s *fakeStore) ListObjects(context.Context, string) ([]storage.ObjectInfo, error) {
	return nil, nil
}

func (s *fakeStore) RemoveObject(context.Context, string) error {
	return nil
}

func newTestSvcCtx(t *testing.T, store storage.ObjectStore) *svc.ServiceContext {
	t.Helper()

	mr := miniredis.RunT(t)
	validator, err := verify.InitValidator(verify.LocaleZH)
	require.NoError(t, err)

	return &svc.ServiceContext{
		Config: config.Config{
			Upload: config.UploadConf{
				MaxFileSize:       52428800,
				AllowedExtensions: []string{"m4a", "mp3", "wav", "aac"},
				RecentListSize:    50,
			},
		},
		Store:     store,
		Cache:     redis.MustNewRedis(redis.RedisConf{Host: mr.Addr(), Type: redis.NodeType}),
		Validator: validator,
	}
}

func newUploadRequest(t *testing.T, filename, userID string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	if userID != "" {
		require.NoError(t, w.WriteField("user_id", userID))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload-audio", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUploadAudioHandlerSuccess(t *testing.T) {
	handler := UploadAudioHandler(newTestSvcCtx(t, &fakeStore{}))

	rec := httptest.NewRecorder()
	handler(rec, newUploadRequest(t, "rec.m4a", "u1", []byte("data")))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "文件上传成功", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, data["url"])
	assert.NotEmpty(t, data["path"])
	assert.Equal(t, "audio/m4a", data["content_type"])
	assert.Equal(t, float64(4), data["size"])
}

// 校验失败: HTTP 400, 响应体 {status, message}, 无 data 字段
func TestUploadAudioHandlerValidationError(t *testing.T) {
	handler := UploadAudioHandler(newTestSvcCtx(t, &fakeStore{}))

	rec := httptest.NewRecorder()
	handler(rec, newUploadRequest(t, "", "u1", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "没有找到文件!", body["message"])
	assert.NotContains(t, body, "data")
}

// 存储失败: HTTP 500, 客户端只看到通用提示
func TestUploadAudioHandlerStorageError(t *testing.T) {
	store := &fakeStore{putErr: errors.New("minio: broken pipe")}
	handler := UploadAudioHandler(newTestSvcCtx(t, store))

	rec := httptest.NewRecorder()
	handler(rec, newUploadRequest(t, "rec.m4a", "u1", []byte("data")))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "文件上传失败!", body["message"])
}

func TestRecentUploadsHandler(t *testing.T) {
	svcCtx := newTestSvcCtx(t, &fakeStore{})

	upload := UploadAudioHandler(svcCtx)
	rec := httptest.NewRecorder()
	upload(rec, newUploadRequest(t, "rec.m4a", "u1", []byte("data")))
	require.Equal(t, http.StatusOK, rec.Code)

	recent := RecentUploadsHandler(svcCtx)
	rec = httptest.NewRecorder()
	recent(rec, httptest.NewRequest(http.MethodGet, "/api/recent-uploads?user_id=u1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "success", body["status"])
	records, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Len(t, records, 1)
}

func TestRecentUploadsHandlerIllegalUserId(t *testing.T) {
	recent := RecentUploadsHandler(newTestSvcCtx(t, &fakeStore{}))

	rec := httptest.NewRecorder()
	recent(rec, httptest.NewRequest(http.MethodGet, "/api/recent-uploads?user_id=a%2Fb", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "error", body["status"])
}
