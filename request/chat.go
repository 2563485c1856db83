package request

type ChatRequest struct {
	FileID   string `json:"file_id" binding:"required"`
	Question string `json:"question" binding:"required"`
}
