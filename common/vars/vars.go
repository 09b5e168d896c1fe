package vars

// 项目版本信息
const (
	ProjectName = "VoiceAccount"
	ProjectVer  = "v1.0.0"
)

// 匿名用户标识，未携带 user_id 的上传统一归入该前缀
const AnonymousUserId = "anonymous"

// 存储键时间戳格式，秒级精度
const StorageKeyTimeLayout = "20060102_150405"
