package cloudinary

import "errors"

var (
	// ErrInvalidRequest возвращается при некорректных входных данных
	ErrInvalidRequest = errors.New("cloudinary client: invalid request")

	// ErrUnauthorized возвращается, когда Cloudinary отклоняет учетные данные
	ErrUnauthorized = errors.New("cloudinary client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("cloudinary client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("cloudinary client: invalid response")

	// ErrRateLimited возвращается, когда загрузки для public ID идут слишком часто
	ErrRateLimited = errors.New("cloudinary client: too many uploads")
)
