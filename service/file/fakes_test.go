package file

import (
	"context"
	"docuchat-backend/config"
	"docuchat-backend/model"
	"docuchat-backend/service/storage"
	"docuchat-backend/service/vectorindex"
	"errors"
	"fmt"
	"testing"
)

type fakeRecords struct {
	files map[string]*model.File
}

func newFakeRecords(files ...*model.File) *fakeRecords {
	r := &fakeRecords{files: make(map[string]*model.File)}
	for _, f := range files {
		r.files[f.Key] = f
	}
	return r
}

func (r *fakeRecords) CreateIfAbsent(file *model.File) (*model.File, bool, error) {
	if existing, ok := r.files[file.Key]; ok {
		return existing, true, nil
	}
	r.files[file.Key] = file
	return file, false, nil
}

func (r *fakeRecords) GetByKey(key string) (*model.File, error) {
	return r.files[key], nil
}

func (r *fakeRecords) ListByOwner(ownerID string) ([]model.File, error) {
	var files []model.File
	for _, f := range r.files {
		if f.OwnerID == ownerID {
			files = append(files, *f)
		}
	}
	return files, nil
}

func (r *fakeRecords) UpdateResult(id string, status model.UploadStatus, pagesAmt int) (bool, error) {
	for _, f := range r.files {
		if f.ID != id {
			continue
		}
		if f.UploadStatus.Terminal() {
			return false, nil
		}
		f.UploadStatus = status
		f.PagesAmt = pagesAmt
		return true, nil
	}
	return false, nil
}

func (r *fakeRecords) DeleteByKey(key string) error {
	delete(r.files, key)
	return nil
}

type fakeStorage struct {
	objects   []storage.Object
	deleted   []string
	listErr   error
	delErr    error
	fetchData []byte
	fetchErr  error
}

func (s *fakeStorage) UploadURL(_ context.Context, key string, operations []string) (string, error) {
	url := "https://storage.example.com/upload/" + key
	if tagging := storage.TaggingHeader(operations); tagging != "" {
		url += "?tagging=" + tagging
	}
	return url, nil
}

func (s *fakeStorage) DownloadURL(_ context.Context, key string) (string, error) {
	return "https://storage.example.com/download/" + key, nil
}

func (s *fakeStorage) List(_ context.Context, folder string) ([]storage.Object, error) {
	return s.objects, s.listErr
}

func (s *fakeStorage) Delete(_ context.Context, key string) error {
	if s.delErr != nil {
		return s.delErr
	}
	s.deleted = append(s.deleted, key)
	return nil
}

func (s *fakeStorage) DeleteBatch(_ context.Context, keys []string) error {
	if s.delErr != nil {
		return s.delErr
	}
	s.deleted = append(s.deleted, keys...)
	return nil
}

func (s *fakeStorage) Fetch(_ context.Context, key string) ([]byte, error) {
	return s.fetchData, s.fetchErr
}

type fakeIndex struct {
	upserts   map[string][]vectorindex.Chunk
	deleted   []string
	upsertErr error
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{upserts: make(map[string][]vectorindex.Chunk)}
}

func (i *fakeIndex) Upsert(_ context.Context, fileID string, chunks []vectorindex.Chunk) error {
	if i.upsertErr != nil {
		return i.upsertErr
	}
	i.upserts[fileID] = append(i.upserts[fileID], chunks...)
	return nil
}

func (i *fakeIndex) DeleteNamespace(_ context.Context, fileID string) error {
	i.deleted = append(i.deleted, fileID)
	return nil
}

type fakePlans struct {
	plan config.Plan
}

func (p fakePlans) PlanFor(string) config.Plan {
	return p.plan
}

type fakeEmbedder struct {
	err error
}

func (e fakeEmbedder) EmbedDocuments(_ context.Context, texts []string) ([][]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(i), 1, 0}
	}
	return vectors, nil
}

func (e fakeEmbedder) EmbedQuery(_ context.Context, _ string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []float32{0, 1, 0}, nil
}

// setupPipeline 替换全局依赖并在测试结束时还原
func setupPipeline(t *testing.T, rec *fakeRecords, store *fakeStorage, idx *fakeIndex, plan config.Plan) {
	t.Helper()

	prevRecords, prevStorage, prevIndex, prevPlans, prevEmbedder := records, Storage, Index, Plans, Embedder
	prevFetch, prevExtract := fetchBlob, extractPages
	t.Cleanup(func() {
		records, Storage, Index, Plans, Embedder = prevRecords, prevStorage, prevIndex, prevPlans, prevEmbedder
		fetchBlob, extractPages = prevFetch, prevExtract
	})

	records = rec
	Storage = store
	Index = idx
	Plans = fakePlans{plan: plan}
	Embedder = fakeEmbedder{}
}

func stubBlob(data []byte, err error) {
	fetchBlob = func(context.Context, string) ([]byte, error) {
		return data, err
	}
}

func stubPages(count int, err error) {
	extractPages = func(context.Context, []byte) ([]string, error) {
		if err != nil {
			return nil, err
		}
		pages := make([]string, 0, count)
		for i := 0; i < count; i++ {
			pages = append(pages, fmt.Sprintf("page %d content", i+1))
		}
		return pages, nil
	}
}

var errUpstream = errors.New("upstream failure")
