package pkg

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PresignExpiry 直传链接有效期
const PresignExpiry = 600 * time.Second

// ObjectStore 对象存储抽象，S3 兼容实现见 S3Store
type ObjectStore interface {
	// PresignedPut 生成限时的直传 PUT 链接
	PresignedPut(ctx context.Context, key string) (string, error)
	// Remove 按 key 删除对象
	Remove(ctx context.Context, key string) error
	// PublicURL 拼出公网读地址
	PublicURL(key string) string
	// KeyFromURL 公网地址反解出 key；不在公网前缀下返回 false
	KeyFromURL(fileURL string) (string, bool)
}

type S3Store struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

type S3Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
}

// normalizeEndpoint 兼容 "minio:9000" 和 "https://xxx.r2.cloudflarestorage.com" 两种写法
func normalizeEndpoint(raw string) (endpoint string, secure bool, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false, fmt.Errorf("empty endpoint")
	}

	if strings.Contains(raw, "://") {
		u, err := url.Parse(raw)
		if err != nil {
			return "", false, err
		}
		if u.Host == "" {
			return "", false, fmt.Errorf("invalid endpoint")
		}
		if u.Path != "" && u.Path != "/" {
			return "", false, fmt.Errorf("endpoint must not contain a path")
		}
		secure = u.Scheme == "https"
		return u.Host, secure, nil
	}

	return raw, false, nil
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 configuration incomplete")
	}

	endpoint, secure, err := normalizeEndpoint(cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, err
	}

	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

func (s *S3Store) PresignedPut(ctx context.Context, key string) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, key, PresignExpiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *S3Store) Remove(ctx context.Context, key string) error {
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *S3Store) PublicURL(key string) string {
	return s.publicURL + "/" + key
}

func (s *S3Store) KeyFromURL(fileURL string) (string, bool) {
	prefix := s.publicURL + "/"
	if s.publicURL == "" || !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(fileURL, prefix), true
}
