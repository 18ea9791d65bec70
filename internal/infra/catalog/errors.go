package catalog

import "errors"

var (
	// ErrReadFile возвращается, когда файл каталога отсутствует или нечитаем
	ErrReadFile = errors.New("catalog.repository: failed to read catalog file")

	// ErrParseFile возвращается при некорректном содержимом файла каталога
	ErrParseFile = errors.New("catalog.repository: failed to parse catalog file")

	// ErrInvalidRoom возвращается при некорректной записи комнаты в каталоге
	ErrInvalidRoom = errors.New("catalog.repository: invalid room record")
)
