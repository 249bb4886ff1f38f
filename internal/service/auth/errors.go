package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already registered")

	// ErrUnauthorized возвращается, когда сессия не найдена или истекла
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidState возвращается при неизвестном или повторно использованном OAuth state
	ErrInvalidState = errors.New("invalid oauth state")

	// ErrGoogleDisabled возвращается, когда вход через Google не настроен
	ErrGoogleDisabled = errors.New("google sign-in is not configured")

	// ErrGoogleAuthFailed возвращается, когда Google не подтвердил пользователя
	ErrGoogleAuthFailed = errors.New("google sign-in failed")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
