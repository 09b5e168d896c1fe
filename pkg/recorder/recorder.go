package recorder

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// State 录音机状态
type State string

const (
	StateIdle             State = "IDLE"
	StateRecording        State = "RECORDING"
	StateStopped          State = "STOPPED"
	StatePermissionDenied State = "PERMISSION_DENIED"
)

// Format 音频容器格式，录音开始时固定，录音中不可变更
type Format string

const (
	FormatM4A Format = "m4a"
	FormatMP3 Format = "mp3"
	FormatWAV Format = "wav"
	FormatAAC Format = "aac"
)

func (f Format) ContentType() string {
	return "audio/" + string(f)
}

// 权限拒绝是终态，只能靠外部设置变更恢复；瞬时 I/O 错误不改变状态
var (
	ErrPermissionDenied = errors.New("麦克风权限被拒绝")
	ErrNotRecording     = errors.New("当前没有进行中的录音")
	ErrUnacknowledged   = errors.New("上一段录音尚未确认")
)

// Artifact 一段完成的录音，作为不透明字节块交给上传客户端，只消费一次
type Artifact struct {
	Data   []byte
	Format Format
	UserId string
}

func (a *Artifact) Size() int64 {
	if a == nil {
		return 0
	}
	return int64(len(a.Data))
}

func (a *Artifact) Empty() bool {
	return a == nil || len(a.Data) == 0
}

// Source 音频采集源。Open 负责申请麦克风权限，
// 权限被拒时返回（或包装）ErrPermissionDenied。
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// PCMSpec 裸 PCM 源的采样参数，Stop 时用于补 WAV 头
type PCMSpec struct {
	SampleRate int
	Channels   int
}

// Recorder 录音状态机:
//
//	Idle -> Recording -> Stopped -> Idle
//
// 权限被拒从 Idle 进入 PermissionDenied。同一时间只允许一个录音会话，
// 录音中再次 Start 为幂等空操作。
type Recorder struct {
	mu       sync.Mutex
	state    State
	source   Source
	format   Format
	pcm      *PCMSpec
	buf      bytes.Buffer
	rc       io.ReadCloser
	done     chan struct{}
	artifact *Artifact
}

type Option func(*Recorder)

// WithRawPCM 声明采集源产出裸 PCM，Stop 时补 44 字节 WAV 头。
// 仅对 FormatWAV 生效。
func WithRawPCM(spec PCMSpec) Option {
	return func(r *Recorder) {
		r.pcm = &spec
	}
}

func New(source Source, format Format, opts ...Option) *Recorder {
	r := &Recorder{
		state:  StateIdle,
		source: source,
		format: format,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Start 开始录音。录音中重复 Start 为幂等空操作；
// 权限被拒后进入终态，后续 Start 直接返回 ErrPermissionDenied。
func (r *Recorder) Start(ctx context.Context) error {
	r.mu.Lock()
	switch r.state {
	case StateRecording:
		r.mu.Unlock()
		return nil
	case StateStopped:
		r.mu.Unlock()
		return ErrUnacknowledged
	case StatePermissionDenied:
		r.mu.Unlock()
		return ErrPermissionDenied
	}
	r.mu.Unlock()

	rc, err := r.source.Open(ctx)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			r.mu.Lock()
			r.state = StatePermissionDenied
			r.mu.Unlock()
			return err
		}
		// 瞬时 I/O 错误，状态保持 Idle，可直接重试
		return errors.Wrap(err, "打开采集源失败")
	}

	r.mu.Lock()
	if r.state != StateIdle {
		// 并发 Start 竞争，后到者放弃自己打开的源
		r.mu.Unlock()
		_ = rc.Close()
		return nil
	}
	r.state = StateRecording
	r.rc = rc
	r.buf.Reset()
	r.done = make(chan struct{})
	done := r.done
	r.mu.Unlock()

	go r.capture(rc, done)
	return nil
}

// capture 持续把采集源的数据搬进缓冲，源关闭或出错后退出
func (r *Recorder) capture(rc io.ReadCloser, done chan struct{}) {
	defer close(done)
	chunk := make([]byte, 4096)
	for {
		n, err := rc.Read(chunk)
		if n > 0 {
			r.mu.Lock()
			r.buf.Write(chunk[:n])
			r.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Stop 结束录音并产出制品。未在录音中时显式拒绝。
func (r *Recorder) Stop() (*Artifact, error) {
	r.mu.Lock()
	if r.state != StateRecording {
		r.mu.Unlock()
		return nil, ErrNotRecording
	}
	r.state = StateStopped
	rc := r.rc
	done := r.done
	r.rc = nil
	r.mu.Unlock()

	_ = rc.Close()
	<-done

	r.mu.Lock()
	defer r.mu.Unlock()
	data := make([]byte, r.buf.Len())
	copy(data, r.buf.Bytes())
	if r.pcm != nil && r.format == FormatWAV {
		data = wrapWAV(data, r.pcm.SampleRate, r.pcm.Channels)
	}
	r.artifact = &Artifact{
		Data:   data,
		Format: r.format,
	}
	r.buf.Reset()
	return r.artifact, nil
}

// Acknowledge 制品移交后复位，无论上传成败。非 Stopped 状态下为空操作。
func (r *Recorder) Acknowledge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateStopped {
		return
	}
	r.artifact = nil
	r.state = StateIdle
}

const (
	wavBytesPerSample = 2 // LINEAR16
	wavBitsPerSample  = 16
	wavPCMFormat      = 1
)

// wrapWAV 给裸 PCM 数据补标准 WAV 头
func wrapWAV(pcmData []byte, sampleRate, channels int) []byte {
	var buf bytes.Buffer
	bps := sampleRate * channels * wavBytesPerSample

	buf.Write([]byte("RIFF"))
	binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcmData)))
	buf.Write([]byte("WAVE"))

	buf.Write([]byte("fmt "))
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(wavPCMFormat))
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(bps))
	binary.Write(&buf, binary.LittleEndian, uint16(wavBytesPerSample*channels))
	binary.Write(&buf, binary.LittleEndian, uint16(wavBitsPerSample))

	// data chunk
	buf.Write([]byte("data"))
	binary.Write(&buf, binary.LittleEndian, uint32(len(pcmData)))
	buf.Write(pcmData)

	return buf.Bytes()
}
