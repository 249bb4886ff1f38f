package profile

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrAvatarTooLarge возвращается, когда файл аватара превышает лимит
	ErrAvatarTooLarge = errors.New("avatar file is too large")

	// ErrUnsupportedImage возвращается при неподдерживаемом формате изображения
	ErrUnsupportedImage = errors.New("unsupported image type")

	// ErrUploadDisabled возвращается, когда хранилище изображений не настроено
	ErrUploadDisabled = errors.New("avatar upload is not configured")

	// ErrTooManyUploads возвращается, когда аватар меняют слишком часто
	ErrTooManyUploads = errors.New("too many avatar uploads")

	// ErrUploadFailed возвращается при ошибке загрузки изображения
	ErrUploadFailed = errors.New("avatar upload failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
