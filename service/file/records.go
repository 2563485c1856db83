package file

import (
	"docuchat-backend/dao"
	"docuchat-backend/model"
)

// recordStore 文件元数据存储
type recordStore interface {
	CreateIfAbsent(file *model.File) (*model.File, bool, error)
	GetByKey(key string) (*model.File, error)
	ListByOwner(ownerID string) ([]model.File, error)
	UpdateResult(id string, status model.UploadStatus, pagesAmt int) (bool, error)
	DeleteByKey(key string) error
}

type daoRecords struct{}

func (daoRecords) CreateIfAbsent(file *model.File) (*model.File, bool, error) {
	return dao.CreateFileIfAbsent(file)
}

func (daoRecords) GetByKey(key string) (*model.File, error) {
	return dao.GetFileByKey(key)
}

func (daoRecords) ListByOwner(ownerID string) ([]model.File, error) {
	return dao.ListFilesByOwner(ownerID)
}

func (daoRecords) UpdateResult(id string, status model.UploadStatus, pagesAmt int) (bool, error) {
	return dao.UpdateFileResult(id, status, pagesAmt)
}

// DeleteByKey 删除文件记录及其名下的对话消息
func (daoRecords) DeleteByKey(key string) error {
	record, err := dao.GetFileByKey(key)
	if err != nil {
		return err
	}
	if record == nil {
		return nil
	}

	if err := dao.DeleteChatMessagesByFileID(record.ID); err != nil {
		return err
	}
	return dao.DeleteFileByKey(key)
}
