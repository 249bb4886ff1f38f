package cloudinary

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// DefaultUploadPrefix адрес Cloudinary Upload API
const DefaultUploadPrefix = "https://api.cloudinary.com"

// Сообщения Cloudinary об ошибках учетных данных
var unauthorizedMessages = []string{
	"Invalid Signature",
	"Unknown API key",
	"Invalid cloud_name",
	"api_secret mismatch",
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Credentials учетные данные Cloudinary
type Credentials struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Client клиент для подписанной загрузки изображений в Cloudinary
type Client struct {
	sdk     *cld.Cloudinary
	folder  string
	cloud   string
	timeout time.Duration
	log     Logger
}

// NewClient создает новый экземпляр клиента Cloudinary.
// uploadPrefix позволяет направить запросы на другой адрес; пустое значение означает DefaultUploadPrefix.
func NewClient(uploadPrefix string, creds Credentials, timeout time.Duration, log Logger) (*Client, error) {
	cfg, err := config.NewFromParams(creds.CloudName, creds.APIKey, creds.APISecret)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid credentials: %v", ErrInvalidRequest, err)
	}
	if uploadPrefix == "" {
		uploadPrefix = DefaultUploadPrefix
	}
	cfg.API.UploadPrefix = strings.TrimRight(uploadPrefix, "/")

	sdk, err := cld.NewFromConfiguration(*cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sdk client: %v", ErrInternal, err)
	}

	return &Client{
		sdk:     sdk,
		folder:  creds.Folder,
		cloud:   creds.CloudName,
		timeout: timeout,
		log:     log,
	}, nil
}

// UploadImage загружает изображение и возвращает его HTTPS адрес.
// Повторная загрузка с тем же publicID перезаписывает изображение.
func (c *Client) UploadImage(ctx context.Context, data []byte, contentType, publicID string) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidRequest)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrInvalidRequest, contentType)
	}
	if publicID == "" {
		return nil, fmt.Errorf("%w: public id is required", ErrInvalidRequest)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.sdk.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		PublicID:  publicID,
		Folder:    c.folder,
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: upload request failed: %v", ErrInvalidResponse, err)
	}

	if msg := res.Error.Message; msg != "" {
		if isUnauthorized(msg) {
			c.log.Error("Cloudinary rejected credentials for cloud=%s: %s", c.cloud, msg)
			return nil, fmt.Errorf("%w: %s", ErrUnauthorized, msg)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidResponse, msg)
	}

	secureURL := res.SecureURL
	if secureURL == "" {
		secureURL = res.URL
	}
	if secureURL == "" {
		return nil, fmt.Errorf("%w: no url in response", ErrInvalidResponse)
	}

	c.log.Info("Uploaded image public_id=%s (%d bytes)", res.PublicID, res.Bytes)

	return &UploadResult{
		URL:      secureURL,
		PublicID: res.PublicID,
		Bytes:    int64(res.Bytes),
	}, nil
}

func isUnauthorized(msg string) bool {
	for _, prefix := range unauthorizedMessages {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
