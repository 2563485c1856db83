package dao

import (
	"docuchat-backend/model"
)

func SaveChatMessage(fileID, role, content string) (*model.ChatMessage, error) {
	message := model.ChatMessage{
		FileID:  fileID,
		Role:    role,
		Content: content,
	}
	if err := DB.Create(&message).Error; err != nil {
		return nil, err
	}
	return &message, nil
}

func GetChatMessagesByFileID(fileID string) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := DB.Where("file_id = ?", fileID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func DeleteChatMessagesByFileID(fileID string) error {
	return DB.Where("file_id = ?", fileID).
		Delete(&model.ChatMessage{}).Error
}
