package file

import (
	"bytes"
	"context"
	"docuchat-backend/config"
	"docuchat-backend/model"
	"docuchat-backend/service/vectorindex"
	"docuchat-backend/utils"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tmc/langchaingo/documentloaders"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/textsplitter"
)

const (
	defaultEmbeddingModel     = "text-embedding-v4"
	defaultChunkSize          = 4000
	defaultChunkOverlap       = 200
	defaultEmbeddingBatchSize = 10

	blobFetchTimeout = 60 * time.Second
)

// Embedder 向量化客户端，进程启动时由Init注入
var Embedder embeddings.Embedder

// NewEmbedder 创建OpenAI兼容模式的embedding客户端
func NewEmbedder() (embeddings.Embedder, error) {
	embeddingModel := config.Cfg.Model.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = defaultEmbeddingModel
	}

	client, err := openai.New(
		openai.WithEmbeddingModel(embeddingModel),
		openai.WithToken(config.Cfg.Model.APIKey),
		openai.WithBaseURL(config.Cfg.Model.BaseURL),
		openai.WithHTTPClient(utils.NewHTTPClient(
			utils.WithTimeout(blobFetchTimeout),
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder client: %v", err)
	}

	return embeddings.NewEmbedder(client,
		embeddings.WithBatchSize(defaultEmbeddingBatchSize),
		embeddings.WithStripNewLines(false),
	)
}

// fetchBlob 从解析出的下载地址拉取文件内容
var fetchBlob = func(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create fetch request: %v", err)
	}

	resp, err := utils.DefaultHTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blob: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d when fetching blob", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// extractPages 抽取PDF的逐页文本
var extractPages = func(ctx context.Context, data []byte) ([]string, error) {
	loader := documentloaders.NewPDF(bytes.NewReader(data), int64(len(data)))
	docs, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading pdf: %v", err)
	}

	pages := make([]string, 0, len(docs))
	for _, doc := range docs {
		pages = append(pages, doc.PageContent)
	}
	return pages, nil
}

// ProcessFile 文件向量化流水线
// 上传完成后由客户端触发，每个文件只会从PROCESSING迁移到一个终态：
//
//	拉取或抽取失败               -> FAILED
//	超出Pro套餐限制              -> EXCEED_PRO（不建立索引，返回ErrFileTooLarge）
//	Free用户超出Free套餐限制     -> EXCEED_FREE（文档已索引，仅作提示）
//	其余                         -> SUCCESS
//
// 终态更新带状态条件，重复触发不会覆盖已有终态；失败不自动重试，
// 用户需以新文件名重新上传
func ProcessFile(ctx context.Context, ownerID, filename string) error {
	key := ObjectKey(ownerID, filename)

	record, err := records.GetByKey(key)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrFileNotFound
	}
	if record.UploadStatus.Terminal() {
		slog.Info("File already processed, skipping",
			"file_id", record.ID,
			"status", record.UploadStatus)
		return nil
	}

	var data []byte
	downloadURL, err := Storage.DownloadURL(ctx, key)
	if err == nil {
		data, err = fetchBlob(ctx, downloadURL)
	}
	if err != nil {
		// 预签名地址拉取失败时回退为直接读取对象
		slog.Warn("Failed to fetch blob via download url, reading object directly",
			"file_id", record.ID,
			"err", err)
		data, err = Storage.Fetch(ctx, key)
	}
	if err != nil {
		slog.Error("Failed to fetch uploaded blob", "file_id", record.ID, "err", err)
		finish(record.ID, model.StatusFailed, 0)
		return nil
	}

	pages, err := extractPages(ctx, data)
	if err != nil {
		slog.Error("Failed to extract pages", "file_id", record.ID, "err", err)
		finish(record.ID, model.StatusFailed, 0)
		return nil
	}
	pagesAmt := len(pages)

	plan := Plans.PlanFor(ownerID)

	// Pro套餐的上限是硬限制，超出即不建立索引
	if evaluateQuota(pagesAmt, int64(len(data)), config.ProPlan()).Exceeded() {
		finish(record.ID, model.StatusExceedPro, pagesAmt)
		return ErrFileTooLarge
	}

	if err := indexPages(ctx, record.ID, pages); err != nil {
		slog.Error("Failed to index document", "file_id", record.ID, "err", err)
		finish(record.ID, model.StatusFailed, pagesAmt)
		return nil
	}

	// Free套餐超限是软限制，文档已索引，仅标记用于提示升级
	status := model.StatusSuccess
	if plan.Name == config.PlanNameFree &&
		evaluateQuota(pagesAmt, int64(len(data)), plan).Exceeded() {
		status = model.StatusExceedFree
	}

	finish(record.ID, status, pagesAmt)
	return nil
}

// indexPages 将逐页文本切分、向量化并写入文件的namespace
// 每页对应一组chunk向量
func indexPages(ctx context.Context, fileID string, pages []string) error {
	splitter := textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(defaultChunkSize),
		textsplitter.WithChunkOverlap(defaultChunkOverlap),
	)

	var texts []string
	var pageNums []int
	for pageNum, page := range pages {
		parts, err := splitter.SplitText(page)
		if err != nil {
			return fmt.Errorf("error splitting page %d: %v", pageNum+1, err)
		}
		for _, part := range parts {
			texts = append(texts, part)
			pageNums = append(pageNums, pageNum+1)
		}
	}

	vectors, err := Embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("error embedding document: %v", err)
	}

	chunks := make([]vectorindex.Chunk, 0, len(texts))
	for idx, text := range texts {
		chunks = append(chunks, vectorindex.Chunk{
			Text:   text,
			Page:   pageNums[idx],
			Vector: vectors[idx],
		})
	}

	return Index.Upsert(ctx, fileID, chunks)
}

func finish(fileID string, status model.UploadStatus, pagesAmt int) {
	updated, err := records.UpdateResult(fileID, status, pagesAmt)
	if err != nil {
		slog.Error("Failed to update file status",
			"file_id", fileID,
			"status", status,
			"err", err)
		return
	}
	if !updated {
		slog.Warn("File already in terminal status, update skipped",
			"file_id", fileID,
			"status", status)
	}
}
