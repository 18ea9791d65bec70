package domain

import "time"

// Форматы даты и времени внешнего сервиса расписаний
// Дата приходит как "d/M/yyyy" - поля могут быть как с ведущим нулем, так и без
// ("5/3/2025" и "05/03/2025" эквивалентны), time.Parse принимает оба варианта
const (
	DateFormat = "2/1/2006"
)

// ParseDate парсит дату в формате внешнего сервиса ("d/M/yyyy")
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}

// SameDay проверяет, что две даты относятся к одному календарному дню
// Время суток игнорируется
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
