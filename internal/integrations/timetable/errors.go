package timetable

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (построение запроса)
	ErrInternal = errors.New("timetable client: internal error")

	// ErrTransport возвращается, когда запрос не дошел до сервиса
	// (сетевая ошибка, таймаут, нет ответа)
	ErrTransport = errors.New("timetable client: transport error")

	// ErrUnexpectedStatus возвращается при не-успешном HTTP статусе ответа
	ErrUnexpectedStatus = errors.New("timetable client: unexpected status code")

	// ErrInvalidResponse возвращается, когда тело ответа не разбирается
	ErrInvalidResponse = errors.New("timetable client: invalid response body")
)
