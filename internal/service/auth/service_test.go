package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	sessionStore "github.com/m04kA/hotel-booking-service/internal/infra/session"
	userRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/user"
	"github.com/m04kA/hotel-booking-service/internal/integrations/google"
	"github.com/m04kA/hotel-booking-service/internal/service/auth/models"
	"github.com/m04kA/hotel-booking-service/pkg/logger"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
)

type fixture struct {
	users    *mockUserRepo
	sessions *mockSessions
	google   *mockGoogle
	metrics  *mockMetrics
	service  *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		users:    &mockUserRepo{},
		sessions: &mockSessions{},
		google:   &mockGoogle{},
		metrics:  &mockMetrics{},
	}
	f.metrics.On("IncAuthAttempt", mock.Anything, mock.Anything).Maybe()
	f.service = NewService(f.users, f.sessions, f.google, passthroughTx{}, f.metrics, bcrypt.MinCost, logger.NewNop())
	t.Cleanup(func() {
		f.users.AssertExpectations(t)
		f.sessions.AssertExpectations(t)
		f.google.AssertExpectations(t)
	})
	return f
}

func session(userID string) *domain.Session {
	return &domain.Session{Token: "token-1", UserID: userID, ExpiresAt: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)}
}

func hashed(t *testing.T, password string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return ptr.Ptr(string(hash))
}

func TestRegister_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "ana@example.com" &&
			u.Provider == domain.ProviderPassword &&
			u.DisplayName != nil && *u.DisplayName == "Ana" &&
			u.PasswordHash != nil &&
			bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("secret1")) == nil
	})).Return(&domain.User{ID: "u-1", Email: "ana@example.com", DisplayName: ptr.Ptr("Ana"), Provider: domain.ProviderPassword}, nil)
	f.sessions.On("Create", ctx, "u-1").Return(session("u-1"), nil)

	resp, err := f.service.Register(ctx, &models.RegisterRequest{Email: "ana@example.com", Password: "secret1", DisplayName: " Ana "})

	require.NoError(t, err)
	assert.Equal(t, "token-1", resp.Token)
	assert.Equal(t, "u-1", resp.User.ID)
	assert.Equal(t, "Ana", resp.User.DisplayName)
}

func TestRegister_ShortPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Register(context.Background(), &models.RegisterRequest{Email: "ana@example.com", Password: "123"})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRegister_EmailTaken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("Create", ctx, mock.Anything).Return(nil, userRepo.ErrEmailTaken)

	_, err := f.service.Register(ctx, &models.RegisterRequest{Email: "ana@example.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		user     *domain.User
		repoErr  error
		password string
		expected error
	}{
		{"success", &domain.User{ID: "u-1", PasswordHash: nil}, nil, "secret1", nil},
		{"wrong password", &domain.User{ID: "u-1"}, nil, "wrong", ErrInvalidCredentials},
		{"unknown email", nil, userRepo.ErrUserNotFound, "secret1", ErrInvalidCredentials},
		{"google-only account", &domain.User{ID: "u-1", Provider: domain.ProviderGoogle}, nil, "secret1", ErrInvalidCredentials},
		{"repository failure", nil, errors.New("db down"), "secret1", ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.user != nil && tt.user.Provider != domain.ProviderGoogle {
				tt.user.PasswordHash = hashed(t, "secret1")
			}
			f.users.On("GetByEmail", ctx, "ana@example.com").Return(tt.user, tt.repoErr)
			if tt.expected == nil {
				f.sessions.On("Create", ctx, "u-1").Return(session("u-1"), nil)
			}

			resp, err := f.service.Login(ctx, &models.LoginRequest{Email: "ana@example.com", Password: tt.password})

			if tt.expected != nil {
				assert.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "token-1", resp.Token)
		})
	}
}

func TestGoogleAuthURL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sessions.On("CreateState", ctx).Return("state-1", nil)
	f.google.On("AuthCodeURL", "state-1").Return("https://accounts.google.com/o/oauth2/auth?state=state-1")

	url, err := f.service.GoogleAuthURL(ctx)

	require.NoError(t, err)
	assert.Contains(t, url, "state=state-1")
}

func TestGoogleAuthURL_Disabled(t *testing.T) {
	service := NewService(&mockUserRepo{}, &mockSessions{}, nil, passthroughTx{}, &mockMetrics{}, bcrypt.MinCost, logger.NewNop())

	_, err := service.GoogleAuthURL(context.Background())

	assert.ErrorIs(t, err, ErrGoogleDisabled)
}

func TestGoogleCallback_InvalidState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sessions.On("ConsumeState", ctx, "bad").Return(sessionStore.ErrStateNotFound)

	_, err := f.service.GoogleCallback(ctx, &models.GoogleCallbackRequest{State: "bad", Code: "code"})

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestGoogleCallback_ExistingGoogleUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	existing := &domain.User{ID: "u-1", Email: "ana@example.com", Provider: domain.ProviderGoogle}

	f.sessions.On("ConsumeState", ctx, "state-1").Return(nil)
	f.google.On("FetchProfile", ctx, "code").Return(&google.Profile{Subject: "sub-1", Email: "ana@example.com"}, nil)
	f.users.On("GetByProvider", ctx, domain.ProviderGoogle, "sub-1").Return(existing, nil)
	f.sessions.On("Create", ctx, "u-1").Return(session("u-1"), nil)

	resp, err := f.service.GoogleCallback(ctx, &models.GoogleCallbackRequest{State: "state-1", Code: "code"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", resp.User.ID)
}

func TestGoogleCallback_LinksByEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	existing := &domain.User{ID: "u-1", Email: "ana@example.com", Provider: domain.ProviderPassword}
	profile := &google.Profile{Subject: "sub-1", Email: "ana@example.com", Name: "Ana G", Picture: "https://lh3/p.png"}

	f.sessions.On("ConsumeState", ctx, "state-1").Return(nil)
	f.google.On("FetchProfile", ctx, "code").Return(profile, nil)
	f.users.On("GetByProvider", ctx, domain.ProviderGoogle, "sub-1").Return(nil, userRepo.ErrUserNotFound)
	f.users.On("GetByEmail", ctx, "ana@example.com").Return(existing, nil)
	f.users.On("LinkProvider", ctx, "u-1", domain.ProviderGoogle, "sub-1").Return(nil)
	f.users.On("UpdateProfile", ctx, "u-1", domain.ProfileUpdate{
		DisplayName: ptr.Ptr("Ana G"),
		PhotoURL:    ptr.Ptr("https://lh3/p.png"),
	}).Return(&domain.User{ID: "u-1", Email: "ana@example.com", DisplayName: ptr.Ptr("Ana G")}, nil)
	f.sessions.On("Create", ctx, "u-1").Return(session("u-1"), nil)

	resp, err := f.service.GoogleCallback(ctx, &models.GoogleCallbackRequest{State: "state-1", Code: "code"})

	require.NoError(t, err)
	assert.Equal(t, "Ana G", resp.User.DisplayName)
}

func TestGoogleCallback_CreatesUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sessions.On("ConsumeState", ctx, "state-1").Return(nil)
	f.google.On("FetchProfile", ctx, "code").Return(&google.Profile{Subject: "sub-2", Email: "new@example.com"}, nil)
	f.users.On("GetByProvider", ctx, domain.ProviderGoogle, "sub-2").Return(nil, userRepo.ErrUserNotFound)
	f.users.On("GetByEmail", ctx, "new@example.com").Return(nil, userRepo.ErrUserNotFound)
	f.users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
		return u.Provider == domain.ProviderGoogle && u.ProviderID != nil && *u.ProviderID == "sub-2" && u.PasswordHash == nil && u.DisplayName == nil
	})).Return(&domain.User{ID: "u-2", Email: "new@example.com", Provider: domain.ProviderGoogle}, nil)
	f.sessions.On("Create", ctx, "u-2").Return(session("u-2"), nil)

	resp, err := f.service.GoogleCallback(ctx, &models.GoogleCallbackRequest{State: "state-1", Code: "code"})

	require.NoError(t, err)
	assert.Equal(t, "u-2", resp.User.ID)
	assert.Equal(t, domain.DefaultGuestDisplayName, resp.User.DisplayName)
}

func TestGoogleCallback_ExchangeFailed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sessions.On("ConsumeState", ctx, "state-1").Return(nil)
	f.google.On("FetchProfile", ctx, "code").Return(nil, google.ErrExchange)

	_, err := f.service.GoogleCallback(ctx, &models.GoogleCallbackRequest{State: "state-1", Code: "code"})

	assert.ErrorIs(t, err, ErrGoogleAuthFailed)
}

func TestAuthenticate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sessions.On("Get", ctx, "good").Return("u-1", nil)
	f.sessions.On("Get", ctx, "expired").Return("", sessionStore.ErrSessionNotFound)

	userID, err := f.service.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)

	_, err = f.service.Authenticate(ctx, "expired")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.users.On("GetByID", ctx, "u-404").Return(nil, userRepo.ErrUserNotFound)

	_, err := f.service.Me(ctx, "u-404")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.sessions.On("Delete", ctx, "token-1").Return(nil)

	assert.NoError(t, f.service.Logout(ctx, "token-1"))
}
