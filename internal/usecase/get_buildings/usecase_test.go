package get_buildings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeCatalog struct {
	names []string
}

func (f *fakeCatalog) BuildingNames() []string {
	return f.names
}

func TestExecute(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{names: []string{"Atrium", "Escarpe", "Le Patio"}}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Atrium", "Escarpe", "Le Patio"}, resp.BuildingNames)
}

func TestExecute_EmptyCatalog(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{names: []string{}}, nopLogger{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resp.BuildingNames)
}
