package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

// Repository статический каталог комнат
// Загружается один раз при старте процесса и дальше только читается,
// поэтому синхронизация не нужна
type Repository struct {
	rooms []domain.Room
}

// Load загружает каталог из JSON файла
// Формат: [{"id": 4105, "building_name": "Atrium"}, ...]
// Любая ошибка чтения или разбора фатальна - сервис не может работать
// с частично загруженным каталогом
func Load(path string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	var rooms []domain.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParseFile, path, err)
	}

	for _, room := range rooms {
		if room.ID <= 0 {
			return nil, fmt.Errorf("%w: room id must be positive, got %d", ErrInvalidRoom, room.ID)
		}
		if room.BuildingName == "" {
			return nil, fmt.Errorf("%w: room %d has empty building name", ErrInvalidRoom, room.ID)
		}
	}

	return &Repository{rooms: rooms}, nil
}

// NewRepository создает каталог из готового списка комнат (используется в тестах)
func NewRepository(rooms []domain.Room) *Repository {
	return &Repository{rooms: rooms}
}

// ListByBuilding возвращает комнаты здания в порядке следования в каталоге
// Сравнение названия здания - точное, с учетом регистра
func (r *Repository) ListByBuilding(buildingName string) []domain.Room {
	result := make([]domain.Room, 0)
	for _, room := range r.rooms {
		if room.BuildingName == buildingName {
			result = append(result, room)
		}
	}
	return result
}

// BuildingNames возвращает названия зданий без дубликатов,
// отсортированные лексикографически
func (r *Repository) BuildingNames() []string {
	seen := make(map[string]struct{}, len(r.rooms))
	names := make([]string, 0)

	for _, room := range r.rooms {
		if _, ok := seen[room.BuildingName]; ok {
			continue
		}
		seen[room.BuildingName] = struct{}{}
		names = append(names, room.BuildingName)
	}

	sort.Strings(names)
	return names
}

// Len возвращает количество комнат в каталоге
func (r *Repository) Len() int {
	return len(r.rooms)
}
