package get_buildings

import (
	"net/http"

	"github.com/m04kA/SMC-RoomFinderService/internal/api/handlers"
)

type Handler struct {
	useCase GetBuildingsUseCase
	logger  Logger
}

// GetBuildingsResponse HTTP response model
type GetBuildingsResponse struct {
	BuildingNames []string `json:"buildingNames"`
}

func NewHandler(useCase GetBuildingsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/buildings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /buildings - Failed to get building names: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &GetBuildingsResponse{
		BuildingNames: result.BuildingNames,
	})
}
