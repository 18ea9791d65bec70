package domain

// Room комната из статического каталога
// Каталог собирается оффлайн утилитой roomscan и не меняется во время работы сервиса
type Room struct {
	ID           int64  `json:"id"`            // Внешний ID комнаты в сервисе расписаний
	BuildingName string `json:"building_name"` // Название здания (ключ группировки)
}

// Event одно бронирование в календаре комнаты
// Значения хранятся как строки в форматах внешнего сервиса (дата "d/M/yyyy", время "H:mm")
// и парсятся только в момент проверки пересечения - некорректная запись
// не должна ломать обработку всего расписания
type Event struct {
	Date      string `json:"date"`
	StartHour string `json:"startHour"`
	EndHour   string `json:"endHour"`
}

// RoomSchedule расписание комнаты, полученное от внешнего сервиса
// Name - отображаемое имя комнаты по данным сервиса расписаний
// (может отличаться от локально известных меток)
type RoomSchedule struct {
	Name   string
	Events []Event
}

// FreeRoom элемент результата поиска свободных комнат
type FreeRoom struct {
	Name string
	ID   int64
}
