package google

import "errors"

var (
	// ErrExchange возвращается, когда Google не принял код авторизации
	ErrExchange = errors.New("google client: code exchange failed")

	// ErrUserinfo возвращается при ошибке получения профиля
	ErrUserinfo = errors.New("google client: userinfo request failed")

	// ErrEmailNotVerified возвращается, если email аккаунта не подтвержден
	ErrEmailNotVerified = errors.New("google client: email is not verified")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("google client: internal error")
)
