// file: internals/helpers/storage/oss_uploader.go
package storage

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"

	"sistema_mar_backend/internals/configs"
)

// Uploader abstrai o armazenamento de blobs: upload(path, file) → URL pública.
// Os controllers recebem a interface para que os testes usem um fake.
type Uploader interface {
	UploadFile(dir string, file *multipart.FileHeader) (string, error)
	Delete(objectKey string) error
}

// Unavailable é o fallback quando o OSS não está configurado: o serviço
// sobe, mas qualquer upload falha com erro explícito.
type Unavailable struct{}

func (Unavailable) UploadFile(string, *multipart.FileHeader) (string, error) {
	return "", fmt.Errorf("storage: não configurado (defina as variáveis OSS_*)")
}

func (Unavailable) Delete(string) error {
	return fmt.Errorf("storage: não configurado (defina as variáveis OSS_*)")
}

type OSSUploader struct {
	bucket    *oss.Bucket
	publicURL string
}

func NewOSSUploader() (*OSSUploader, error) {
	endpoint := configs.GetEnv("OSS_ENDPOINT")
	accessKey := configs.GetEnv("OSS_ACCESS_KEY_ID")
	secretKey := configs.GetEnv("OSS_ACCESS_KEY_SECRET")
	bucketName := configs.GetEnv("OSS_BUCKET")
	if endpoint == "" || accessKey == "" || secretKey == "" || bucketName == "" {
		return nil, fmt.Errorf("storage: variáveis OSS_* incompletas")
	}

	client, err := oss.New(endpoint, accessKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("storage: cliente OSS: %w", err)
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("storage: bucket %s: %w", bucketName, err)
	}

	publicURL := configs.GetEnv("OSS_PUBLIC_URL",
		fmt.Sprintf("https://%s.%s", bucketName, strings.TrimPrefix(endpoint, "https://")))

	return &OSSUploader{bucket: bucket, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

// UploadFile envia o arquivo para <dir>/<uuid><ext> e devolve a URL pública.
func (u *OSSUploader) UploadFile(dir string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("storage: abrir arquivo: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(file.Filename))
	objectKey := fmt.Sprintf("%s/%s_%s%s",
		strings.Trim(dir, "/"),
		time.Now().UTC().Format("20060102"),
		uuid.NewString(),
		ext,
	)

	opts := []oss.Option{oss.ContentType(file.Header.Get("Content-Type"))}
	if err := u.bucket.PutObject(objectKey, src, opts...); err != nil {
		return "", fmt.Errorf("storage: upload %s: %w", objectKey, err)
	}
	return u.publicURL + "/" + objectKey, nil
}

func (u *OSSUploader) Delete(objectKey string) error {
	return u.bucket.DeleteObject(strings.TrimPrefix(objectKey, "/"))
}
