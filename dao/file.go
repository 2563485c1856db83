package dao

import (
	"docuchat-backend/model"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateFileIfAbsent 按key条件插入文件记录
// key上有唯一索引，冲突时不插入，返回已存在的记录，避免check-then-act竞态
func CreateFileIfAbsent(file *model.File) (*model.File, bool, error) {
	result := DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoNothing: true,
	}).Create(file)
	if result.Error != nil {
		return nil, false, result.Error
	}

	if result.RowsAffected == 0 {
		existing, err := GetFileByKey(file.Key)
		if err != nil {
			return nil, false, err
		}
		return existing, true, nil
	}

	return file, false, nil
}

func GetFileByKey(key string) (*model.File, error) {
	var file model.File
	if err := DB.Where("`key` = ?", key).
		First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

func ListFilesByOwner(ownerID string) ([]model.File, error) {
	var files []model.File
	if err := DB.Where("owner_id = ?", ownerID).
		Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func GetFileByID(id string) (*model.File, error) {
	var file model.File
	if err := DB.Where("id = ?", id).
		First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &file, nil
}

// UpdateFileResult 写入终态和页数
// 仅当记录仍处于PROCESSING时生效，并发的重复触发不会覆盖已有终态；
// 返回本次更新是否生效
func UpdateFileResult(id string, status model.UploadStatus, pagesAmt int) (bool, error) {
	result := DB.Model(&model.File{}).
		Where("id = ? AND upload_status = ?", id, model.StatusProcessing).
		Updates(map[string]any{
			"upload_status": status,
			"pages_amt":     pagesAmt,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func DeleteFileByKey(key string) error {
	return DB.Where("`key` = ?", key).
		Delete(&model.File{}).Error
}
