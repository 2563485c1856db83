package request

// UploadFileRequest 申请上传时可选的后处理操作，
// 以对象标签的形式附着在直传请求上
type UploadFileRequest struct {
	Operations []string `json:"operations"`
}
