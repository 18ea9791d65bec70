package timetable

import "github.com/m04kA/SMC-RoomFinderService/internal/domain"

// Room ответ сервиса расписаний на /api/events/{roomId}.json
// codeX/codeY - служебные поля площадки с кодами корпуса/здания,
// заполняются не для всех комнат
type Room struct {
	Name   string         `json:"name"`
	CodeX  *string        `json:"codeX"`
	CodeY  *string        `json:"codeY"`
	Events EventsEnvelope `json:"events"`
}

// EventsEnvelope обертка списка событий в ответе сервиса
type EventsEnvelope struct {
	Events []Event `json:"events"`
}

// Event запись события в календаре комнаты, форматы полей текстовые:
// дата "d/M/yyyy", время "H:mm"
type Event struct {
	Date      string `json:"date"`
	StartHour string `json:"startHour"`
	EndHour   string `json:"endHour"`
}

// ToDomainSchedule конвертирует ответ сервиса в доменное расписание
func (r *Room) ToDomainSchedule() *domain.RoomSchedule {
	events := make([]domain.Event, len(r.Events.Events))
	for i, ev := range r.Events.Events {
		events[i] = domain.Event{
			Date:      ev.Date,
			StartHour: ev.StartHour,
			EndHour:   ev.EndHour,
		}
	}

	return &domain.RoomSchedule{
		Name:   r.Name,
		Events: events,
	}
}

// BuildingLabel возвращает метку здания для комнаты
// Приоритет codeY -> codeX -> name унаследован от исходного поведения
// площадки и не выводится заново из данных
func (r *Room) BuildingLabel() string {
	if r.CodeY != nil && *r.CodeY != "" {
		return *r.CodeY
	}
	if r.CodeX != nil && *r.CodeX != "" {
		return *r.CodeX
	}
	return r.Name
}
