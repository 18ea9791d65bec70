package get_buildings

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getBuildings "github.com/m04kA/SMC-RoomFinderService/internal/usecase/get_buildings"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeUseCase struct {
	resp *getBuildings.Response
	err  error
}

func (f *fakeUseCase) Execute(ctx context.Context) (*getBuildings.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{resp: &getBuildings.Response{
		BuildingNames: []string{"Atrium", "Escarpe"},
	}}
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/buildings", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"buildingNames":["Atrium","Escarpe"]}`, rec.Body.String())
}

func TestHandle_InternalError(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: errors.New("boom")}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/buildings", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
