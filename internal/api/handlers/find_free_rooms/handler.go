package find_free_rooms

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
	findFreeRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_free_rooms"
)

const (
	msgInvalidBody  = "некорректное тело запроса, ожидается JSON"
	msgInvalidInput = "отсутствуют или некорректны обязательные поля: buildingName, date (d/M/yyyy), startTime, endTime (H:mm)"
)

type Handler struct {
	useCase FindFreeRoomsUseCase
	logger  Logger
}

func NewHandler(useCase FindFreeRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/free-rooms
// Body: {"buildingName": "...", "date": "d/M/yyyy", "startTime": "H:mm", "endTime": "H:mm"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req FindFreeRoomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("POST /free-rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, findFreeRooms.ErrInvalidInput):
			h.logger.Warn("POST /free-rooms - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /free-rooms - Failed to find free rooms: building=%q, date=%s, error=%v",
				req.BuildingName, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /free-rooms - Found %d free rooms: building=%q, date=%s, window=%s-%s",
		len(result.FreeRooms), req.BuildingName, req.Date, req.StartTime, req.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
