package timetable

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса расписаний
// Один вызов = один исходящий запрос, без ретраев: неудача одной комнаты
// не критична, resolver пропускает такую комнату
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса расписаний
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRoomSchedule получает календарь событий комнаты
// Все виды неудач (транспорт, статус, разбор тела) возвращаются как
// sentinel-ошибки с ID комнаты - вызывающая сторона трактует их одинаково
func (c *Client) GetRoomSchedule(ctx context.Context, roomID int64) (*Room, error) {
	url := fmt.Sprintf("%s/api/events/%d.json", c.baseURL, roomID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: room %d: failed to create request: %v", ErrInternal, roomID, err)
	}

	c.setBrowserHeaders(req, roomID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: room %d: %v", ErrTransport, roomID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: room %d: status %d", ErrUnexpectedStatus, roomID, resp.StatusCode)
	}

	var room Room
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return nil, fmt.Errorf("%w: room %d: failed to decode response: %v", ErrInvalidResponse, roomID, err)
	}

	c.log.Info("GetRoomSchedule: room %d (%s): fetched %d events", roomID, room.Name, len(room.Events.Events))
	return &room, nil
}

// setBrowserHeaders выставляет заголовки, с которыми сервис расписаний
// принимает запрос как обычный браузерный
// Referer обязан содержать ID комнаты - без него сервис отвечает отказом
func (c *Client) setBrowserHeaders(req *http.Request, roomID int64) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)")
	req.Header.Set("Referer", fmt.Sprintf("%s/public/%d", c.baseURL, roomID))
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,fr;q=0.8")
	req.Header.Set("DNT", "1")
	req.Header.Set("Connection", "keep-alive")
}
