package find_free_rooms

import "errors"

var (
	// ErrInvalidInput возвращается при отсутствующих или неразбираемых полях запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
