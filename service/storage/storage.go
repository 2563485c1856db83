package storage

import (
	"context"
	"docuchat-backend/config"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// 预签名URL有效期，客户端需在该时间内完成直传/下载
const presignExpiration = 15 * time.Minute

// Object 存储对象的元信息
type Object struct {
	Key      string
	Size     int64
	Modified time.Time
}

// Client OSS适配器，封装预签名、列举、删除和读取能力
type Client struct {
	oss    *oss.Client
	bucket string
}

func NewClient() *Client {
	cfg := &oss.Config{
		Region: oss.Ptr(config.Cfg.OSS.Region),
		CredentialsProvider: credentials.NewStaticCredentialsProvider(
			config.Cfg.OSS.AccessKeyID,
			config.Cfg.OSS.AccessKeySecret,
		),
	}

	return &Client{
		oss:    oss.NewClient(cfg),
		bucket: config.Cfg.OSS.BucketName,
	}
}

// ObjectURL 对象的公网访问地址（不带签名）
func ObjectURL(key string) string {
	return fmt.Sprintf("https://%s.oss-%s.aliyuncs.com/%s",
		config.Cfg.OSS.BucketName, config.Cfg.OSS.Region, key)
}

// TaggingHeader 上传时的对象标签
// operations = ["white-dots", "round-edge"] => "white-dots=1&round-edge=1"
func TaggingHeader(operations []string) string {
	if len(operations) == 0 {
		return ""
	}
	tags := make([]string, 0, len(operations))
	for _, op := range operations {
		tags = append(tags, op+"=1")
	}
	return strings.Join(tags, "&")
}

// UploadURL 生成直传用的预签名PUT地址
// operations不为空时以对象标签的形式附着在上传请求上
func (c *Client) UploadURL(ctx context.Context, key string, operations []string) (string, error) {
	request := &oss.PutObjectRequest{
		Bucket: oss.Ptr(c.bucket),
		Key:    oss.Ptr(key),
	}
	if tagging := TaggingHeader(operations); tagging != "" {
		request.Tagging = oss.Ptr(tagging)
	}

	result, err := c.oss.Presign(ctx, request, oss.PresignExpires(presignExpiration))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload url for %s: %v", key, err)
	}
	return result.URL, nil
}

// DownloadURL 生成预签名GET地址
func (c *Client) DownloadURL(ctx context.Context, key string) (string, error) {
	request := &oss.GetObjectRequest{
		Bucket: oss.Ptr(c.bucket),
		Key:    oss.Ptr(key),
	}

	result, err := c.oss.Presign(ctx, request, oss.PresignExpires(presignExpiration))
	if err != nil {
		return "", fmt.Errorf("failed to presign download url for %s: %v", key, err)
	}
	return result.URL, nil
}

// List 列举文件夹下的全部对象
func (c *Client) List(ctx context.Context, folder string) ([]Object, error) {
	result, err := c.oss.ListObjectsV2(ctx, &oss.ListObjectsV2Request{
		Bucket: oss.Ptr(c.bucket),
		Prefix: oss.Ptr(folder + "/"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects under %s: %v", folder, err)
	}

	objects := make([]Object, 0, len(result.Contents))
	for _, content := range result.Contents {
		object := Object{Size: content.Size}
		if content.Key != nil {
			object.Key = *content.Key
		}
		if content.LastModified != nil {
			object.Modified = *content.LastModified
		}
		objects = append(objects, object)
	}
	return objects, nil
}

// Delete 删除单个对象
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.oss.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(c.bucket),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %v", key, err)
	}
	return nil
}

// DeleteBatch 批量删除对象
func (c *Client) DeleteBatch(ctx context.Context, keys []string) error {
	objects := make([]oss.DeleteObject, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, oss.DeleteObject{Key: oss.Ptr(key)})
	}

	_, err := c.oss.DeleteMultipleObjects(ctx, &oss.DeleteMultipleObjectsRequest{
		Bucket:  oss.Ptr(c.bucket),
		Objects: objects,
		Quiet:   true,
	})
	if err != nil {
		return fmt.Errorf("failed to delete objects %v: %v", keys, err)
	}
	return nil
}

// Fetch 读取对象内容
func (c *Client) Fetch(ctx context.Context, key string) ([]byte, error) {
	result, err := c.oss.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(c.bucket),
		Key:    oss.Ptr(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %v", key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %v", key, err)
	}
	return data, nil
}
