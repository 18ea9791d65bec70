package find_free_rooms

import (
	findFreeRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_free_rooms"
)

// FindFreeRoomsRequest HTTP request model
// Дата в формате d/M/yyyy, время в 24-часовом формате H:mm
type FindFreeRoomsRequest struct {
	BuildingName string `json:"buildingName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// FindFreeRoomsResponse HTTP response model
type FindFreeRoomsResponse struct {
	FreeRooms []FreeRoom `json:"freeRooms"`
}

// FreeRoom свободная комната в ответе
// Name - имя комнаты по данным сервиса расписаний
type FreeRoom struct {
	Name string `json:"name"`
	ID   int64  `json:"id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в запрос use case
func (r *FindFreeRoomsRequest) ToUseCaseRequest() *findFreeRooms.Request {
	return &findFreeRooms.Request{
		BuildingName: r.BuildingName,
		Date:         r.Date,
		StartTime:    r.StartTime,
		EndTime:      r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findFreeRooms.Response) *FindFreeRoomsResponse {
	rooms := make([]FreeRoom, len(resp.FreeRooms))
	for i, room := range resp.FreeRooms {
		rooms[i] = FreeRoom{
			Name: room.Name,
			ID:   room.ID,
		}
	}

	return &FindFreeRoomsResponse{FreeRooms: rooms}
}
