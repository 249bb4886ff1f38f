package cloudinary

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Uploader загрузка изображения
type Uploader interface {
	UploadImage(ctx context.Context, data []byte, contentType, publicID string) (*UploadResult, error)
}

// RateLimitedUploader ограничивает частоту загрузок для каждого public ID
type RateLimitedUploader struct {
	base  Uploader
	limit rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewRateLimitedUploader разрешает burst загрузок подряд и далее одну за every.
// every <= 0 отключает ограничение.
func NewRateLimitedUploader(base Uploader, every time.Duration, burst int) *RateLimitedUploader {
	limit := rate.Inf
	if every > 0 {
		limit = rate.Every(every)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimitedUploader{
		base:    base,
		limit:   limit,
		burst:   burst,
		buckets: make(map[string]*rate.Limiter),
	}
}

// UploadImage загружает изображение, если лимит для publicID не исчерпан
func (u *RateLimitedUploader) UploadImage(ctx context.Context, data []byte, contentType, publicID string) (*UploadResult, error) {
	if !u.limiterFor(publicID).Allow() {
		return nil, fmt.Errorf("%w: public_id=%s", ErrRateLimited, publicID)
	}
	return u.base.UploadImage(ctx, data, contentType, publicID)
}

func (u *RateLimitedUploader) limiterFor(publicID string) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	limiter, ok := u.buckets[publicID]
	if !ok {
		limiter = rate.NewLimiter(u.limit, u.burst)
		u.buckets[publicID] = limiter
	}
	return limiter
}
