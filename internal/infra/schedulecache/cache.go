package schedulecache

import (
	"sync"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

// Cache кеш расписаний комнат на время жизни процесса
// Без вытеснения и TTL: каталог ограничен сотнями комнат, расписания меняются
// редко относительно аптайма сервиса, единственный способ сбросить кеш -
// перезапуск процесса
//
// Конкурентные запросы могут гонятся за заполнение одной и той же комнаты,
// last-writer-wins допустим: повторная загрузка возвращает эквивалентное расписание
type Cache struct {
	mu      sync.RWMutex
	entries map[int64]*domain.RoomSchedule
}

// New создает пустой кеш расписаний
func New() *Cache {
	return &Cache{
		entries: make(map[int64]*domain.RoomSchedule),
	}
}

// Get возвращает расписание комнаты, если оно уже загружено
func (c *Cache) Get(roomID int64) (*domain.RoomSchedule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	schedule, ok := c.entries[roomID]
	return schedule, ok
}

// Put сохраняет расписание комнаты
func (c *Cache) Put(roomID int64, schedule *domain.RoomSchedule) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[roomID] = schedule
}

// Len возвращает количество закешированных расписаний
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
