package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	sessionStore "github.com/m04kA/hotel-booking-service/internal/infra/session"
	userRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/user"
	googleClient "github.com/m04kA/hotel-booking-service/internal/integrations/google"
	"github.com/m04kA/hotel-booking-service/internal/service/auth/models"
	"github.com/m04kA/hotel-booking-service/pkg/ptr"
)

const (
	methodPassword = "password"
	methodGoogle   = "google"
	resultSuccess  = "success"
	resultFailure  = "failure"
)

// Service сервис аутентификации
type Service struct {
	userRepo   UserRepository
	sessions   SessionStore
	google     GoogleClient // nil, если вход через Google не настроен
	txManager  TransactionManager
	metrics    MetricsRecorder
	bcryptCost int
	logger     Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	sessions SessionStore,
	google GoogleClient,
	txManager TransactionManager,
	metrics MetricsRecorder,
	bcryptCost int,
	logger Logger,
) *Service {
	return &Service{
		userRepo:   userRepo,
		sessions:   sessions,
		google:     google,
		txManager:  txManager,
		metrics:    metrics,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register регистрирует пользователя по email и паролю и открывает сессию
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	s.logger.Info("Register: email=%s", req.Email)

	if len(req.Password) < domain.MinPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: ptr.Ptr(string(hash)),
		Provider:     domain.ProviderPassword,
		DisplayName:  ptr.NilIfZero(strings.TrimSpace(req.DisplayName)),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email=%s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: created user id=%s", created.ID)
	return s.openSession(ctx, created)
}

// Login проверяет пароль и открывает сессию
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	s.logger.Info("Login: email=%s", req.Email)

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.metrics.IncAuthAttempt(methodPassword, resultFailure)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if !user.HasPassword() {
		s.metrics.IncAuthAttempt(methodPassword, resultFailure)
		s.logger.Warn("Login: user id=%s has no password (provider=%s)", user.ID, user.Provider)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.metrics.IncAuthAttempt(methodPassword, resultFailure)
		s.logger.Warn("Login: wrong password for user id=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncAuthAttempt(methodPassword, resultSuccess)
	return s.openSession(ctx, user)
}

// GoogleAuthURL создает OAuth state и возвращает адрес страницы согласия
func (s *Service) GoogleAuthURL(ctx context.Context) (string, error) {
	if s.google == nil {
		return "", ErrGoogleDisabled
	}

	state, err := s.sessions.CreateState(ctx)
	if err != nil {
		s.logger.Error("GoogleAuthURL: failed to store state: %v", err)
		return "", fmt.Errorf("%w: GoogleAuthURL - store state: %v", ErrInternal, err)
	}

	return s.google.AuthCodeURL(state), nil
}

// GoogleCallback завершает вход через Google: проверяет state, получает профиль,
// находит или создает пользователя и открывает сессию
func (s *Service) GoogleCallback(ctx context.Context, req *models.GoogleCallbackRequest) (*models.AuthResponse, error) {
	if s.google == nil {
		return nil, ErrGoogleDisabled
	}

	if err := s.sessions.ConsumeState(ctx, req.State); err != nil {
		if errors.Is(err, sessionStore.ErrStateNotFound) {
			s.logger.Warn("GoogleCallback: unknown state")
			return nil, ErrInvalidState
		}
		return nil, fmt.Errorf("%w: GoogleCallback - consume state: %v", ErrInternal, err)
	}

	profile, err := s.google.FetchProfile(ctx, req.Code)
	if err != nil {
		s.metrics.IncAuthAttempt(methodGoogle, resultFailure)
		if errors.Is(err, googleClient.ErrExchange) || errors.Is(err, googleClient.ErrEmailNotVerified) {
			s.logger.Warn("GoogleCallback: google rejected sign-in: %v", err)
			return nil, ErrGoogleAuthFailed
		}
		s.logger.Error("GoogleCallback: failed to fetch profile: %v", err)
		return nil, fmt.Errorf("%w: GoogleCallback - fetch profile: %v", ErrInternal, err)
	}

	var user *domain.User
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		user, err = s.upsertGoogleUser(ctx, profile)
		return err
	})
	if err != nil {
		s.logger.Error("GoogleCallback: failed to upsert user email=%s: %v", profile.Email, err)
		return nil, fmt.Errorf("%w: GoogleCallback - upsert user: %v", ErrInternal, err)
	}

	s.metrics.IncAuthAttempt(methodGoogle, resultSuccess)
	return s.openSession(ctx, user)
}

// upsertGoogleUser ищет пользователя по аккаунту Google, затем по email; иначе создает нового
func (s *Service) upsertGoogleUser(ctx context.Context, profile *googleClient.Profile) (*domain.User, error) {
	user, err := s.userRepo.GetByProvider(ctx, domain.ProviderGoogle, profile.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, err
	}

	user, err = s.userRepo.GetByEmail(ctx, profile.Email)
	switch {
	case err == nil:
		if err := s.userRepo.LinkProvider(ctx, user.ID, domain.ProviderGoogle, profile.Subject); err != nil {
			return nil, err
		}
		s.logger.Info("GoogleCallback: linked google account to user id=%s", user.ID)
		// Фото и имя из Google заполняют только пустые поля профиля
		update := domain.ProfileUpdate{}
		if user.DisplayName == nil && profile.Name != "" {
			update.DisplayName = ptr.Ptr(profile.Name)
		}
		if user.PhotoURL == nil && profile.Picture != "" {
			update.PhotoURL = ptr.Ptr(profile.Picture)
		}
		return s.userRepo.UpdateProfile(ctx, user.ID, update)
	case !errors.Is(err, userRepo.ErrUserNotFound):
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, &domain.User{
		ID:          uuid.NewString(),
		Email:       profile.Email,
		Provider:    domain.ProviderGoogle,
		ProviderID:  ptr.Ptr(profile.Subject),
		DisplayName: ptr.NilIfZero(profile.Name),
		PhotoURL:    ptr.NilIfZero(profile.Picture),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("GoogleCallback: created user id=%s", created.ID)
	return created, nil
}

// Logout закрывает сессию
func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.logger.Error("Logout: failed to delete session: %v", err)
		return fmt.Errorf("%w: Logout - delete session: %v", ErrInternal, err)
	}
	return nil
}

// Authenticate возвращает ID пользователя по токену сессии
func (s *Service) Authenticate(ctx context.Context, token string) (string, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			return "", ErrUnauthorized
		}
		s.logger.Error("Authenticate: session store error: %v", err)
		return "", fmt.Errorf("%w: Authenticate - session store: %v", ErrInternal, err)
	}
	return userID, nil
}

// Me возвращает текущего пользователя
func (s *Service) Me(ctx context.Context, userID string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Me: repository error for user id=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Me - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

func (s *Service) openSession(ctx context.Context, user *domain.User) (*models.AuthResponse, error) {
	session, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		s.logger.Error("openSession: failed to create session for user id=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: openSession - create session: %v", ErrInternal, err)
	}
	return models.NewAuthResponse(session, user), nil
}
