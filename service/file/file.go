package file

import (
	"context"
	"docuchat-backend/config"
	"docuchat-backend/model"
	"docuchat-backend/service/storage"
	"docuchat-backend/service/vectorindex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrFileNotFound = errors.New("file metadata not found")
	ErrFileTooLarge = errors.New("File too large")
)

// ObjectStorage 对象存储能力：签发预签名URL、列举、删除、读取
type ObjectStorage interface {
	UploadURL(ctx context.Context, key string, operations []string) (string, error)
	DownloadURL(ctx context.Context, key string) (string, error)
	List(ctx context.Context, folder string) ([]storage.Object, error)
	Delete(ctx context.Context, key string) error
	DeleteBatch(ctx context.Context, keys []string) error
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// VectorIndex 向量库能力：按文件namespace写入和删除
type VectorIndex interface {
	Upsert(ctx context.Context, fileID string, chunks []vectorindex.Chunk) error
	DeleteNamespace(ctx context.Context, fileID string) error
}

// PlanResolver 解析用户当前套餐
type PlanResolver interface {
	PlanFor(ownerID string) config.Plan
}

// 全局依赖，进程启动时由Init注入
var (
	Storage ObjectStorage
	Index   VectorIndex
	Plans   PlanResolver

	records recordStore = daoRecords{}
)

func Init(s ObjectStorage, i VectorIndex, p PlanResolver) {
	Storage = s
	Index = i
	Plans = p
}

// ObjectKey 文件在对象存储上的路径，按owner隔离
func ObjectKey(ownerID, filename string) string {
	return ownerID + "/" + filename
}

// UploadGrant 上传凭证：直传用的预签名URL和对应的文件记录
type UploadGrant struct {
	SignedURL string
	File      *model.File
}

// RequestUpload 申请上传
// key上的插入是条件插入，同一(owner, filename)只会创建一条记录，
// 重复申请返回已存在的记录和新的预签名URL
func RequestUpload(ctx context.Context, ownerID, filename string, operations []string) (*UploadGrant, error) {
	key := ObjectKey(ownerID, filename)

	record := &model.File{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Key:          key,
		Name:         filename,
		URL:          storage.ObjectURL(key),
		UploadStatus: model.StatusProcessing,
	}

	record, existed, err := records.CreateIfAbsent(record)
	if err != nil {
		return nil, fmt.Errorf("failed to create file metadata: %v", err)
	}
	if existed {
		slog.Info("Upload already requested for key, reusing record",
			"key", key,
			"file_id", record.ID)
	}

	signedURL, err := Storage.UploadURL(ctx, key, operations)
	if err != nil {
		return nil, err
	}

	return &UploadGrant{
		SignedURL: signedURL,
		File:      record,
	}, nil
}

// FileInfo 文件列表项，对象存储列举结果与元数据记录的合并视图
type FileInfo struct {
	ID           string             `json:"id"`
	Filename     string             `json:"filename"`
	URL          string             `json:"url"`
	Size         int64              `json:"size"`
	Modified     time.Time          `json:"modified"`
	UploadStatus model.UploadStatus `json:"upload_status,omitempty"`
	PagesAmt     int                `json:"pages_amt,omitempty"`
}

// ListFiles 列举owner文件夹下的全部对象并解析下载地址
// 元数据记录一次性查出后按key合并，无记录的对象仍出现在列表中
func ListFiles(ctx context.Context, ownerID string) ([]FileInfo, error) {
	objects, err := Storage.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	owned, err := records.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]*model.File, len(owned))
	for idx := range owned {
		byKey[owned[idx].Key] = &owned[idx]
	}

	files := make([]FileInfo, 0, len(objects))
	for _, object := range objects {
		url, err := Storage.DownloadURL(ctx, object.Key)
		if err != nil {
			return nil, err
		}

		info := FileInfo{
			ID:       object.Key,
			Filename: strings.TrimPrefix(object.Key, ownerID+"/"),
			URL:      url,
			Size:     object.Size,
			Modified: object.Modified,
		}

		if record, ok := byKey[object.Key]; ok {
			info.ID = record.ID
			info.UploadStatus = record.UploadStatus
			info.PagesAmt = record.PagesAmt
		}

		files = append(files, info)
	}
	return files, nil
}

// DeleteFiles 删除owner名下的一个或一批文件
// 对象、文件记录和向量namespace一并删除
func DeleteFiles(ctx context.Context, ownerID string, filenames []string) error {
	keys := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		keys = append(keys, ObjectKey(ownerID, filename))
	}

	if len(keys) == 1 {
		if err := Storage.Delete(ctx, keys[0]); err != nil {
			return err
		}
	} else {
		if err := Storage.DeleteBatch(ctx, keys); err != nil {
			return err
		}
	}

	for _, key := range keys {
		record, err := records.GetByKey(key)
		if err != nil {
			return err
		}
		if record == nil {
			continue
		}

		if err := Index.DeleteNamespace(ctx, record.ID); err != nil {
			return err
		}
		if err := records.DeleteByKey(key); err != nil {
			return err
		}
	}
	return nil
}
