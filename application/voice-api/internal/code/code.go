package code

import "github.com/yanshicheng/voice-account/common/handler/errorx"

var (
	// 表单/参数相关错误（第四位为 0）
	ParseFormErr     = errorx.New(201001, "解析表单失败!")
	UserIdIllegalErr = errorx.New(201002, "user_id 参数不合法，仅支持字母、数字、下划线、中划线!")

	// 文件校验相关错误（第四位为 1）
	FileNotFoundErr    = errorx.New(201101, "没有找到文件!")
	FileNameEmptyErr   = errorx.New(201102, "文件名为空!")
	FileCountErr       = errorx.New(201103, "一次仅支持上传一个文件!")
	FileTypeNotAllowed = errorx.New(201104, "不支持的文件类型，仅支持: m4a, mp3, wav, aac!")
	FileSizeExceeded   = errorx.New(201105, "文件大小超过限制!")
	FileEmptyErr       = errorx.New(201106, "文件内容为空!")
	FileReadErr        = errorx.New(201107, "读取文件失败!")

	// 存储相关错误（第四位为 2）
	FileUploadErr     = errorx.NewSystem(201201, "文件上传失败!")
	StorageCheckErr   = errorx.NewSystem(201202, "存储服务连接失败!")
	BucketNotExistErr = errorx.NewSystem(201203, "存储桶不存在，请检查配置!")

	// 缓存相关错误（第四位为 3）
	RecentUploadsErr = errorx.NewSystem(201301, "查询上传记录失败!")
)
