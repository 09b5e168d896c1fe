package uploader

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/yanshicheng/voice-account/common/vars"
	"github.com/yanshicheng/voice-account/pkg/recorder"
)

// 默认单次上传超时，超时按传输失败处理
const defaultTimeout = 60 * time.Second

// Result 服务端返回的结构化上传结果，
// Data 仅在 status 为 success 时存在。
type Result struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    *ResultData `json:"data,omitempty"`
}

func (r *Result) Success() bool {
	return r != nil && r.Status == "success"
}

type ResultData struct {
	Url         string `json:"url"`
	Filename    string `json:"filename"`
	Path        string `json:"path"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// TransportError 网络/超时类失败。此类失败未触达服务端业务逻辑，
// 是否重试由调用方决定，重试会在服务端派生全新的存储键。
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("上传请求失败: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

var ErrEmptyArtifact = errors.New("录音内容为空")

// Uploader 上传客户端，单次请求，不重试、不在本地排队缓存失败的上传
type Uploader struct {
	client  *resty.Client
	baseURL string
}

type Option func(*Uploader)

func WithTimeout(d time.Duration) Option {
	return func(u *Uploader) {
		u.client.SetTimeout(d)
	}
}

func New(baseURL string, opts ...Option) *Uploader {
	u := &Uploader{
		client:  resty.New().SetTimeout(defaultTimeout),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Upload 把录音制品以 multipart 形式提交给摄入服务。
// 网络/超时失败返回 TransportError；只要收到 HTTP 响应，
// 服务端的提示信息都会原样出现在 Result.Message 里，不做二次加工。
func (u *Uploader) Upload(ctx context.Context, artifact *recorder.Artifact, userID string) (*Result, error) {
	if artifact.Empty() {
		return nil, ErrEmptyArtifact
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = strings.TrimSpace(artifact.UserId)
	}
	if userID == "" {
		userID = vars.AnonymousUserId
	}

	var result Result
	resp, err := u.client.R().
		SetContext(ctx).
		SetFileReader("file", "recording."+string(artifact.Format), bytes.NewReader(artifact.Data)).
		SetFormData(map[string]string{"user_id": userID}).
		SetResult(&result).
		SetError(&result).
		Post(u.baseURL + "/api/upload-audio")
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.IsError() && result.Message == "" {
		// 服务端返回了非 JSON 错误体，原样透传
		result.Status = "error"
		result.Message = strings.TrimSpace(string(resp.Body()))
	}
	return &result, nil
}
