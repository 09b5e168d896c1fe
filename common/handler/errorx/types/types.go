package types

// Status 统一错误响应体，校验失败与系统错误均使用该结构，
// 成功响应不经过这里，由各接口自己的响应类型定义。
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
