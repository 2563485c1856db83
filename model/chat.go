package model

import "time"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage 文档对话消息，按文件维度组织
// 建立联合索引 (file_id, created_at)
type ChatMessage struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `gorm:"index:idx_file_created" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FileID    string    `gorm:"not null;size:36;index:idx_file_created" json:"file_id"`
	Role      string    `gorm:"not null" json:"role"`
	Content   string    `gorm:"type:text" json:"content"`
}

func (ChatMessage) TableName() string {
	return "chat_message"
}
