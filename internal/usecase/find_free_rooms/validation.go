package find_free_rooms

import (
	"fmt"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	"github.com/m04kA/SMC-RoomFinderService/pkg/types"
)

// validateRequest валидирует и парсит входные данные запроса
// Ошибки валидации возвращаются до любых сетевых обращений
//
// Соотношение startTime < endTime не проверяется намеренно: проверка
// пересечения корректна только при его соблюдении, но это контракт вызывающей
// стороны (окно с endTime <= startTime просто не пересечется ни с чем)
func validateRequest(req *Request) (*query, error) {
	if req.BuildingName == "" {
		return nil, fmt.Errorf("%w: buildingName is required", ErrInvalidInput)
	}

	if req.Date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime == "" {
		return nil, fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected d/M/yyyy", ErrInvalidInput, req.Date)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime %q, expected H:mm", ErrInvalidInput, req.StartTime)
	}

	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime %q, expected H:mm", ErrInvalidInput, req.EndTime)
	}

	return &query{
		buildingName: req.BuildingName,
		date:         date,
		startTime:    startTime,
		endTime:      endTime,
	}, nil
}
