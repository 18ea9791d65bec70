package find_free_rooms

import (
	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// hasConflict проверяет, пересекается ли хотя бы одно событие расписания
// с запрошенным окном
//
// Сначала фильтр по календарному дню: события другого дня пропускаются без
// сравнения времени. Для событий нужного дня интервалы считаются полуоткрытыми:
// [a,b) и [c,d) пересекаются только при a < d && c < b. Строгие неравенства
// означают, что бронирование, заканчивающееся ровно в начале окна (или
// начинающееся ровно в его конце), пересечением НЕ считается - смежные
// бронирования совместимы
//
// Примеры:
// - Событие 09:00-10:00, окно 08:00-09:00 → НЕТ пересечения (граничат)
// - Событие 09:00-10:00, окно 08:30-09:30 → ЕСТЬ пересечение
//
// Возвращает true на первом найденном пересечении; пустое расписание - комната свободна
func (uc *UseCase) hasConflict(schedule *domain.RoomSchedule, q *query) bool {
	for _, event := range schedule.Events {
		eventDate, err := domain.ParseDate(event.Date)
		if err != nil {
			// Некорректная запись события не повод выкидывать всю комнату:
			// пропускаем ее как не-конфликтующую, но фиксируем аномалию.
			// Риск: комната может быть показана свободной, когда занята
			uc.logger.Warn("hasConflict: room %q: malformed event date %q, skipping event", schedule.Name, event.Date)
			uc.metrics.IncMalformedEvent()
			continue
		}

		if !domain.SameDay(eventDate, q.date) {
			continue
		}

		eventStart, err := types.NewTimeStringFromString(event.StartHour)
		if err != nil {
			uc.logger.Warn("hasConflict: room %q: malformed event start %q, skipping event", schedule.Name, event.StartHour)
			uc.metrics.IncMalformedEvent()
			continue
		}

		eventEnd, err := types.NewTimeStringFromString(event.EndHour)
		if err != nil {
			uc.logger.Warn("hasConflict: room %q: malformed event end %q, skipping event", schedule.Name, event.EndHour)
			uc.metrics.IncMalformedEvent()
			continue
		}

		if eventStart.IsBefore(q.endTime) && q.startTime.IsBefore(eventEnd) {
			return true
		}
	}

	return false
}
