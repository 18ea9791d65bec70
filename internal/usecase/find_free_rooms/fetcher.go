package find_free_rooms

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/internal/integrations/timetable"
)

// collectSchedules получает расписания всех комнат списка
// Результат индексирован позицией комнаты в списке: порядок ответа
// детерминирован порядком каталога независимо от порядка завершения запросов.
// nil в результате означает, что комнату не удалось загрузить и она
// пропускается целиком
//
// Параллелизм ограничен maxConcurrentFetches (1 = последовательный обход),
// между запусками выдерживается pacingDelay - внешний сервис режет всплески
// запросов
func (uc *UseCase) collectSchedules(ctx context.Context, rooms []domain.Room) []*domain.RoomSchedule {
	results := make([]*domain.RoomSchedule, len(rooms))

	sem := make(chan struct{}, uc.maxConcurrentFetches)
	var wg sync.WaitGroup

	for i, room := range rooms {
		if uc.pacingDelay > 0 && i > 0 {
			time.Sleep(uc.pacingDelay)
		}

		sem <- struct{}{}
		wg.Add(1)

		go func(idx int, room domain.Room) {
			defer wg.Done()
			defer func() { <-sem }()

			results[idx] = uc.obtainSchedule(ctx, room.ID)
		}(i, room)
	}

	wg.Wait()
	return results
}

// obtainSchedule возвращает расписание комнаты из кеша или загружает его
// Кеш живет все время жизни процесса: повторный запрос той же комнаты
// не порождает сетевой вызов
func (uc *UseCase) obtainSchedule(ctx context.Context, roomID int64) *domain.RoomSchedule {
	if schedule, ok := uc.cache.Get(roomID); ok {
		uc.metrics.IncCacheHit()
		return schedule
	}
	uc.metrics.IncCacheMiss()

	room, err := uc.client.GetRoomSchedule(ctx, roomID)
	if err != nil {
		// Неудача одной комнаты не прерывает запрос: комната исключается
		// из результата и не попадает в кеш
		uc.logger.Warn("obtainSchedule: room %d excluded: %v", roomID, err)
		uc.metrics.IncFetchFailure(fetchFailureReason(err))
		return nil
	}

	schedule := room.ToDomainSchedule()
	uc.cache.Put(roomID, schedule)

	return schedule
}

// fetchFailureReason классифицирует ошибку загрузки для метрик
func fetchFailureReason(err error) string {
	switch {
	case errors.Is(err, timetable.ErrUnexpectedStatus):
		return "status"
	case errors.Is(err, timetable.ErrTransport):
		return "transport"
	case errors.Is(err, timetable.ErrInvalidResponse):
		return "decode"
	default:
		return "internal"
	}
}
