package vectorindex

import (
	"context"
	"docuchat-backend/config"
	"fmt"
	"strings"

	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
)

const (
	// CollectionName 文档chunk集合
	CollectionName = "document_chunks"

	// VectorDim 向量维度，与milvus-schema工具创建的集合保持一致
	VectorDim = 1024
)

// Chunk 一段带页码的文档内容和对应向量
type Chunk struct {
	Text   string
	Page   int
	Vector []float32
}

// Index Milvus适配器
// 每个文件对应集合内的一个partition（namespace），以文件ID命名，
// 删除文件时整个partition一并删除
type Index struct {
	client *milvusclient.Client
}

func NewIndex(ctx context.Context) (*Index, error) {
	client, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address: config.Cfg.Milvus.Endpoint,
		APIKey:  config.Cfg.Milvus.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create milvus client: %v", err)
	}

	return &Index{client: client}, nil
}

// PartitionName 文件ID到partition名称的映射
// partition名称不允许包含"-"，UUID中的连字符替换为下划线
func PartitionName(fileID string) string {
	return "ns_" + strings.ReplaceAll(fileID, "-", "_")
}

// Upsert 将一个文件的全部chunk写入其namespace
func (i *Index) Upsert(ctx context.Context, fileID string, chunks []Chunk) error {
	partition := PartitionName(fileID)

	has, err := i.client.HasPartition(ctx, milvusclient.NewHasPartitionOption(CollectionName, partition))
	if err != nil {
		return fmt.Errorf("failed to check partition %s: %v", partition, err)
	}
	if !has {
		if err := i.client.CreatePartition(ctx, milvusclient.NewCreatePartitionOption(CollectionName, partition)); err != nil {
			return fmt.Errorf("failed to create partition %s: %v", partition, err)
		}
	}

	texts := make([]string, 0, len(chunks))
	pages := make([]int64, 0, len(chunks))
	vectors := make([][]float32, 0, len(chunks))
	for _, chunk := range chunks {
		texts = append(texts, chunk.Text)
		pages = append(pages, int64(chunk.Page))
		vectors = append(vectors, chunk.Vector)
	}

	columns := []column.Column{
		column.NewColumnVarChar("text", texts),
		column.NewColumnInt64("page", pages),
		column.NewColumnFloatVector("vector", VectorDim, vectors),
	}

	insertOption := milvusclient.NewColumnBasedInsertOption(CollectionName).
		WithColumns(columns...).
		WithPartition(partition)
	if _, err := i.client.Insert(ctx, insertOption); err != nil {
		return fmt.Errorf("failed to insert chunks into partition %s: %v", partition, err)
	}

	return nil
}

// Search 在单个文件的namespace内做ANN检索，返回最相关的chunk文本
func (i *Index) Search(ctx context.Context, fileID string, vector []float32, topK int) ([]string, error) {
	partition := PartitionName(fileID)

	searchOption := milvusclient.NewSearchOption(CollectionName, topK, []entity.Vector{
		entity.FloatVector(vector),
	}).
		WithPartitions(partition).
		WithANNSField("vector").
		WithOutputFields("text")

	resultSets, err := i.client.Search(ctx, searchOption)
	if err != nil {
		return nil, fmt.Errorf("failed to search partition %s: %v", partition, err)
	}

	var texts []string
	for _, resultSet := range resultSets {
		textColumn := resultSet.GetColumn("text")
		if textColumn == nil {
			continue
		}
		for idx := 0; idx < textColumn.Len(); idx++ {
			text, err := textColumn.GetAsString(idx)
			if err != nil {
				return nil, fmt.Errorf("failed to read search result: %v", err)
			}
			texts = append(texts, text)
		}
	}
	return texts, nil
}

// DeleteNamespace 删除文件对应的partition及其中全部向量
func (i *Index) DeleteNamespace(ctx context.Context, fileID string) error {
	partition := PartitionName(fileID)

	has, err := i.client.HasPartition(ctx, milvusclient.NewHasPartitionOption(CollectionName, partition))
	if err != nil {
		return fmt.Errorf("failed to check partition %s: %v", partition, err)
	}
	if !has {
		return nil
	}

	// 删除前需释放partition
	if err := i.client.ReleasePartitions(ctx, milvusclient.NewReleasePartitionsOptions(CollectionName, partition)); err != nil {
		return fmt.Errorf("failed to release partition %s: %v", partition, err)
	}

	if err := i.client.DropPartition(ctx, milvusclient.NewDropPartitionOption(CollectionName, partition)); err != nil {
		return fmt.Errorf("failed to drop partition %s: %v", partition, err)
	}
	return nil
}

func (i *Index) Close(ctx context.Context) error {
	return i.client.Close(ctx)
}
