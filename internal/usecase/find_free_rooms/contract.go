package find_free_rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/internal/integrations/timetable"
)

// RoomCatalog интерфейс статического каталога комнат
type RoomCatalog interface {
	// ListByBuilding возвращает комнаты здания в порядке следования в каталоге
	ListByBuilding(buildingName string) []domain.Room
}

// ScheduleCache интерфейс кеша расписаний комнат
type ScheduleCache interface {
	Get(roomID int64) (*domain.RoomSchedule, bool)
	Put(roomID int64, schedule *domain.RoomSchedule)
}

// TimetableClient интерфейс клиента сервиса расписаний
type TimetableClient interface {
	GetRoomSchedule(ctx context.Context, roomID int64) (*timetable.Room, error)
}

// Metrics интерфейс для счетчиков наблюдаемости
// Неудачные загрузки и пропуски некорректных событий не фатальны,
// но должны быть видны снаружи
type Metrics interface {
	IncFetchFailure(reason string)
	IncCacheHit()
	IncCacheMiss()
	IncMalformedEvent()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NoopMetrics заглушка метрик, используется когда сбор метрик выключен
type NoopMetrics struct{}

func (NoopMetrics) IncFetchFailure(reason string) {}
func (NoopMetrics) IncCacheHit()                  {}
func (NoopMetrics) IncCacheMiss()                 {}
func (NoopMetrics) IncMalformedEvent()            {}
