package find_free_rooms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
	findFreeRooms "github.com/m04kA/SMC-RoomFinderService/internal/usecase/find_free_rooms"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	gotReq *findFreeRooms.Request
	resp   *findFreeRooms.Response
	err    error
}

func (f *fakeUseCase) Execute(ctx context.Context, req *findFreeRooms.Request) (*findFreeRooms.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/free-rooms", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &findFreeRooms.Response{
		BuildingName: "X",
		Date:         "10/6/2025",
		FreeRooms: []domain.FreeRoom{
			{Name: "Room 102", ID: 102},
		},
	}}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(handler, `{"buildingName":"X","date":"10/6/2025","startTime":"09:30","endTime":"10:30"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp FindFreeRoomsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.FreeRooms, 1)
	assert.Equal(t, "Room 102", resp.FreeRooms[0].Name)
	assert.Equal(t, int64(102), resp.FreeRooms[0].ID)

	// Поля запроса доходят до use case без изменений
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "X", uc.gotReq.BuildingName)
	assert.Equal(t, "10/6/2025", uc.gotReq.Date)
	assert.Equal(t, "09:30", uc.gotReq.StartTime)
	assert.Equal(t, "10:30", uc.gotReq.EndTime)
}

func TestHandle_EmptyResult(t *testing.T) {
	uc := &fakeUseCase{resp: &findFreeRooms.Response{FreeRooms: []domain.FreeRoom{}}}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(handler, `{"buildingName":"X","date":"10/6/2025","startTime":"09:30","endTime":"10:30"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"freeRooms":[]}`, rec.Body.String())
}

func TestHandle_InvalidBody(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(handler, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error"])
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &fakeUseCase{err: findFreeRooms.ErrInvalidInput}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(handler, `{"buildingName":"X"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: errors.New("boom")}
	handler := NewHandler(uc, nopLogger{})

	rec := doRequest(handler, `{"buildingName":"X","date":"10/6/2025","startTime":"09:30","endTime":"10:30"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}
