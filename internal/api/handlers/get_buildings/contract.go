package get_buildings

import (
	"context"

	getBuildings "github.com/m04kA/SMC-RoomFinderService/internal/usecase/get_buildings"
)

type GetBuildingsUseCase interface {
	Execute(ctx context.Context) (*getBuildings.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
