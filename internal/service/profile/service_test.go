package profile

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	userRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/user"
	"github.com/m04kA/hotel-booking-service/internal/integrations/cloudinary"
	"github.com/m04kA/hotel-booking-service/internal/service/profile/models"
	"github.com/m04kA/hotel-booking-service/pkg/logger"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) (*domain.User, error) {
	args := m.Called(ctx, id, update)
	if u := args.Get(0); u != nil {
		return u.(*domain.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUploader struct{ mock.Mock }

func (m *mockUploader) UploadImage(ctx context.Context, data []byte, contentType, publicID string) (*cloudinary.UploadResult, error) {
	args := m.Called(ctx, data, contentType, publicID)
	if r := args.Get(0); r != nil {
		return r.(*cloudinary.UploadResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	service := NewService(users, nil, logger.NewNop())

	users.On("GetByID", ctx, "u-1").Return(&domain.User{ID: "u-1", Email: "ana@example.com"}, nil)
	users.On("GetByID", ctx, "u-404").Return(nil, userRepo.ErrUserNotFound)

	resp, err := service.Get(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultGuestDisplayName, resp.DisplayName)
	assert.False(t, resp.HasPassword)

	_, err = service.Get(ctx, "u-404")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdate_MergesPresentFields(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	service := NewService(users, nil, logger.NewNop())

	users.On("UpdateProfile", ctx, "u-1", domain.ProfileUpdate{DisplayName: ptr.Ptr("Ana")}).
		Return(&domain.User{ID: "u-1", DisplayName: ptr.Ptr("Ana"), PhotoURL: ptr.Ptr("https://img/old.png")}, nil)

	resp, err := service.Update(ctx, "u-1", &models.UpdateProfileRequest{DisplayName: ptr.Ptr("  Ana ")})

	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.DisplayName)
	assert.Equal(t, "https://img/old.png", *resp.PhotoURL)
	users.AssertExpectations(t)
}

func TestUpdate_Validation(t *testing.T) {
	service := NewService(&mockUserRepo{}, nil, logger.NewNop())

	tests := []struct {
		name        string
		displayName string
	}{
		{"blank", "   "},
		{"too long", strings.Repeat("a", domain.MaxDisplayNameLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Update(context.Background(), "u-1", &models.UpdateProfileRequest{DisplayName: ptr.Ptr(tt.displayName)})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_EmptyReturnsCurrent(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	service := NewService(users, nil, logger.NewNop())

	users.On("GetByID", ctx, "u-1").Return(&domain.User{ID: "u-1", DisplayName: ptr.Ptr("Ana")}, nil)

	resp, err := service.Update(ctx, "u-1", &models.UpdateProfileRequest{})

	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.DisplayName)
	users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadAvatar_Success(t *testing.T) {
	ctx := context.Background()
	users := &mockUserRepo{}
	uploader := &mockUploader{}
	service := NewService(users, uploader, logger.NewNop())
	data := []byte("\x89PNG....")

	uploader.On("UploadImage", ctx, data, "image/png", "avatar_u-1").
		Return(&cloudinary.UploadResult{URL: "https://res.cloudinary.com/demo/avatar_u-1.png", PublicID: "avatars/avatar_u-1"}, nil)
	users.On("UpdateProfile", ctx, "u-1", domain.ProfileUpdate{PhotoURL: ptr.Ptr("https://res.cloudinary.com/demo/avatar_u-1.png")}).
		Return(&domain.User{ID: "u-1", PhotoURL: ptr.Ptr("https://res.cloudinary.com/demo/avatar_u-1.png")}, nil)

	resp, err := service.UploadAvatar(ctx, "u-1", &models.UploadAvatarRequest{Data: data, ContentType: "image/png"})

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/avatar_u-1.png", *resp.PhotoURL)
	uploader.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestUploadAvatar_Rejections(t *testing.T) {
	uploader := &mockUploader{}
	service := NewService(&mockUserRepo{}, uploader, logger.NewNop())

	tests := []struct {
		name        string
		req         *models.UploadAvatarRequest
		expectedErr error
	}{
		{"empty", &models.UploadAvatarRequest{ContentType: "image/png"}, ErrInvalidInput},
		{"too large", &models.UploadAvatarRequest{Data: bytes.Repeat([]byte{1}, domain.MaxAvatarSizeBytes+1), ContentType: "image/png"}, ErrAvatarTooLarge},
		{"gif", &models.UploadAvatarRequest{Data: []byte("GIF89a"), ContentType: "image/gif"}, ErrUnsupportedImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.UploadAvatar(context.Background(), "u-1", tt.req)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
	uploader.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadAvatar_Disabled(t *testing.T) {
	service := NewService(&mockUserRepo{}, nil, logger.NewNop())

	_, err := service.UploadAvatar(context.Background(), "u-1", &models.UploadAvatarRequest{Data: []byte("x"), ContentType: "image/png"})

	assert.ErrorIs(t, err, ErrUploadDisabled)
}

func TestUploadAvatar_UploadFailed(t *testing.T) {
	ctx := context.Background()
	uploader := &mockUploader{}
	service := NewService(&mockUserRepo{}, uploader, logger.NewNop())

	uploader.On("UploadImage", ctx, mock.Anything, "image/jpeg", "avatar_u-1").Return(nil, cloudinary.ErrInternal)

	_, err := service.UploadAvatar(ctx, "u-1", &models.UploadAvatarRequest{Data: []byte("jpeg"), ContentType: "image/jpeg"})

	assert.ErrorIs(t, err, ErrUploadFailed)
}

func TestUploadAvatar_RateLimited(t *testing.T) {
	ctx := context.Background()
	uploader := &mockUploader{}
	service := NewService(&mockUserRepo{}, uploader, logger.NewNop())

	uploader.On("UploadImage", ctx, mock.Anything, "image/png", "avatar_u-1").Return(nil, cloudinary.ErrRateLimited)

	_, err := service.UploadAvatar(ctx, "u-1", &models.UploadAvatarRequest{Data: []byte("png"), ContentType: "image/png"})

	assert.ErrorIs(t, err, ErrTooManyUploads)
}
