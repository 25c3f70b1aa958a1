package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"wpcopyright/internal/app/config"
	"wpcopyright/internal/app/copyright"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

const exportPrefix = "exports/"

// ErrObjectNotFound: объекта нет в bucket
var ErrObjectNotFound = errors.New("object not found")

type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOClient создает клиент для MinIO и bucket, если его нет
func NewMinIOClient(ctx context.Context, cfg config.MinIOConfig) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", cfg.Bucket)
	}

	return &MinIOClient{
		client:     client,
		bucketName: cfg.Bucket,
	}, nil
}

// contentTypeFor определяет content type по расширению
func contentTypeFor(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return "application/json"
	case ".toml":
		return "application/toml"
	case ".html", ".htm":
		return "text/html"
	}
	return "application/octet-stream"
}

// exportObjectName генерирует уникальное имя для выгрузки настроек
func exportObjectName(now time.Time) string {
	return fmt.Sprintf("%swpcopyright_options_%s_%d.json",
		exportPrefix,
		uuid.New().String()[:8],
		now.Unix())
}

// UploadFile загружает файл в MinIO под именем filename
func (m *MinIOClient) UploadFile(ctx context.Context, fileData []byte, filename string) error {
	reader := bytes.NewReader(fileData)
	_, err := m.client.PutObject(ctx, m.bucketName, filename, reader, int64(len(fileData)), minio.PutObjectOptions{
		ContentType: contentTypeFor(filename),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	logrus.Infof("File %s uploaded successfully", filename)
	return nil
}

// GetFileURL возвращает временный URL для доступа к файлу (1 час)
func (m *MinIOClient) GetFileURL(ctx context.Context, filename string) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucketName, filename, time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

// DownloadFile скачивает файл из MinIO
func (m *MinIOClient) DownloadFile(ctx context.Context, filename string) ([]byte, error) {
	object, err := m.client.GetObject(ctx, m.bucketName, filename, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

// FileExists проверяет существует ли файл
func (m *MinIOClient) FileExists(ctx context.Context, filename string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucketName, filename, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file: %w", err)
	}

	return true, nil
}

// LoadCatalog читает таблицу лицензий из объекта в bucket
func (m *MinIOClient) LoadCatalog(ctx context.Context, object string) (*copyright.Catalog, error) {
	exists, err := m.FileExists(ctx, object)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", object, ErrObjectNotFound)
	}

	data, err := m.DownloadFile(ctx, object)
	if err != nil {
		return nil, err
	}
	catalog, err := copyright.ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("object %s: %w", object, err)
	}
	logrus.Infof("License catalog loaded from %s (%d licenses)", object, catalog.Len())
	return catalog, nil
}

// Export: результат выгрузки настроек
type Export struct {
	Object string
	URL    string
}

// ExportSettings сохраняет снимок настроек в JSON и возвращает ссылку на него
func (m *MinIOClient) ExportSettings(ctx context.Context, settings copyright.Settings) (Export, error) {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return Export{}, fmt.Errorf("failed to encode settings: %w", err)
	}

	name := exportObjectName(time.Now())
	if err := m.UploadFile(ctx, data, name); err != nil {
		return Export{}, err
	}

	url, err := m.GetFileURL(ctx, name)
	if err != nil {
		logrus.Warnf("Export %s saved without URL: %v", name, err)
	}
	return Export{Object: name, URL: url}, nil
}
