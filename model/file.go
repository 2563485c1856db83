package model

import "time"

type UploadStatus string

const (
	// 等待向量化处理
	StatusProcessing UploadStatus = "PROCESSING"

	// 文件向量化处理完成
	StatusSuccess UploadStatus = "SUCCESS"

	// 文件向量化处理失败
	StatusFailed UploadStatus = "FAILED"

	// 超出Free套餐限制，文档已索引，仅用于提示升级
	StatusExceedFree UploadStatus = "EXCEED_FREE"

	// 超出Pro套餐限制，文档未索引
	StatusExceedPro UploadStatus = "EXCEED_PRO"
)

// Terminal 终态后流水线不再迁移状态，除非用户以新文件名重新上传
func (s UploadStatus) Terminal() bool {
	return s != StatusProcessing
}

// File 存储文件元数据和处理状态
// key 为 {owner_id}/{file_name}，每个(owner, filename)组合仅创建一条记录；
// ID 同时作为该文件在向量库中的namespace标识
type File struct {
	ID        string    `gorm:"primarykey;size:36" json:"id"`
	CreatedAt time.Time `gorm:"not null;index:idx_owner_created" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	OwnerID   string    `gorm:"not null;index:idx_owner_created" json:"owner_id"`
	Key       string    `gorm:"not null;uniqueIndex" json:"key"`
	Name      string    `gorm:"not null" json:"name"`

	// 文件的下载地址
	URL string `gorm:"not null" json:"url"`

	// 文件处理状态
	UploadStatus UploadStatus `gorm:"not null;default:PROCESSING" json:"upload_status"`

	// PDF页数，抽取完成后写入
	PagesAmt int `json:"pages_amt"`
}

func (File) TableName() string {
	return "files"
}
