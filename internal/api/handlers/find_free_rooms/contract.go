package find_free_rooms

import (
	"context"

	findFreeRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_free_rooms"
)

type FindFreeRoomsUseCase interface {
	Execute(ctx context.Context, req *findFreeRooms.Request) (*findFreeRooms.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
