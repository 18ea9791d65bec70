package find_free_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

// UseCase use case поиска свободных комнат здания на заданное окно времени
type UseCase struct {
	catalog              RoomCatalog
	cache                ScheduleCache
	client               TimetableClient
	metrics              Metrics
	maxConcurrentFetches int
	pacingDelay          time.Duration
	logger               Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog RoomCatalog,
	cache ScheduleCache,
	client TimetableClient,
	metrics Metrics,
	maxConcurrentFetches int,
	pacingDelay time.Duration,
	logger Logger,
) *UseCase {
	if maxConcurrentFetches < 1 {
		maxConcurrentFetches = 1
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}

	return &UseCase{
		catalog:              catalog,
		cache:                cache,
		client:               client,
		metrics:              metrics,
		maxConcurrentFetches: maxConcurrentFetches,
		pacingDelay:          pacingDelay,
		logger:               logger,
	}
}

// Execute выполняет поиск свободных комнат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindFreeRooms: building=%q, date=%s, window=%s-%s",
		req.BuildingName, req.Date, req.StartTime, req.EndTime)

	// 1. Валидация и парсинг входных данных
	q, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("FindFreeRooms: validation failed: %v", err)
		return nil, err
	}

	// 2. Кандидаты из каталога; пустое здание - пустой результат, не ошибка
	rooms := uc.catalog.ListByBuilding(q.buildingName)
	if len(rooms) == 0 {
		uc.logger.Info("FindFreeRooms: no rooms in catalog for building=%q", q.buildingName)
		return &Response{
			BuildingName: req.BuildingName,
			Date:         req.Date,
			FreeRooms:    []domain.FreeRoom{},
		}, nil
	}

	// 3. Расписания: кеш или загрузка, недоступные комнаты пропускаются
	schedules := uc.collectSchedules(ctx, rooms)

	// 4. Проверка пересечений, накопление результата в порядке каталога
	freeRooms := make([]domain.FreeRoom, 0, len(rooms))
	for i, schedule := range schedules {
		if schedule == nil {
			continue
		}

		if uc.hasConflict(schedule, q) {
			continue
		}

		freeRooms = append(freeRooms, domain.FreeRoom{
			Name: schedule.Name,
			ID:   rooms[i].ID,
		})
	}

	uc.logger.Info("FindFreeRooms: found %d free rooms of %d candidates in building=%q between %s and %s on %s",
		len(freeRooms), len(rooms), req.BuildingName, req.StartTime, req.EndTime, req.Date)

	return &Response{
		BuildingName: req.BuildingName,
		Date:         req.Date,
		FreeRooms:    freeRooms,
	}, nil
}
