package find_free_rooms

import (
	"time"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// Request модель запроса поиска свободных комнат
// Поля приходят сырыми строками из транспортного слоя и парсятся
// при валидации: дата "d/M/yyyy", время "H:mm" или "HH:mm"
type Request struct {
	BuildingName string
	Date         string
	StartTime    string
	EndTime      string
}

// Response модель ответа со списком свободных комнат
// Порядок комнат совпадает с порядком следования в каталоге
type Response struct {
	BuildingName string
	Date         string
	FreeRooms    []domain.FreeRoom
}

// query распарсенный запрос
type query struct {
	buildingName string
	date         time.Time
	startTime    types.TimeString
	endTime      types.TimeString
}
