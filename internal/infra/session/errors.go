package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.store: session not found")

	// ErrStateNotFound возвращается, когда OAuth state не найден, истек или уже использован
	ErrStateNotFound = errors.New("session.store: oauth state not found")

	// ErrStorage возвращается при ошибках Redis
	ErrStorage = errors.New("session.store: storage error")
)
