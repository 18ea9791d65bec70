package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomFinderService/internal/domain"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "valid_rooms.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"id": 101, "building_name": "X"},
		{"id": 102, "building_name": "X"},
		{"id": 201, "building_name": "Atrium"}
	]`)

	repo, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrReadFile)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeCatalogFile(t, `{"not": "a list"`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrParseFile)
}

func TestLoad_InvalidRoom(t *testing.T) {
	t.Run("non positive id", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"id": 0, "building_name": "X"}]`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidRoom)
	})

	t.Run("empty building name", func(t *testing.T) {
		path := writeCatalogFile(t, `[{"id": 5, "building_name": ""}]`)
		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidRoom)
	})
}

func TestRepository_ListByBuilding(t *testing.T) {
	repo := NewRepository([]domain.Room{
		{ID: 101, BuildingName: "X"},
		{ID: 201, BuildingName: "Atrium"},
		{ID: 102, BuildingName: "X"},
	})

	rooms := repo.ListByBuilding("X")
	require.Len(t, rooms, 2)

	// Порядок каталога сохраняется
	assert.Equal(t, int64(101), rooms[0].ID)
	assert.Equal(t, int64(102), rooms[1].ID)
}

func TestRepository_ListByBuilding_Unknown(t *testing.T) {
	repo := NewRepository([]domain.Room{{ID: 101, BuildingName: "X"}})

	assert.Empty(t, repo.ListByBuilding("Y"))
}

func TestRepository_ListByBuilding_CaseSensitive(t *testing.T) {
	repo := NewRepository([]domain.Room{{ID: 101, BuildingName: "Atrium"}})

	// Сравнение точное, с учетом регистра
	assert.Empty(t, repo.ListByBuilding("atrium"))
	assert.Len(t, repo.ListByBuilding("Atrium"), 1)
}

func TestRepository_BuildingNames(t *testing.T) {
	repo := NewRepository([]domain.Room{
		{ID: 1, BuildingName: "Escarpe"},
		{ID: 2, BuildingName: "Atrium"},
		{ID: 3, BuildingName: "Escarpe"},
		{ID: 4, BuildingName: "Le Patio"},
	})

	// Без дубликатов, лексикографический порядок
	assert.Equal(t, []string{"Atrium", "Escarpe", "Le Patio"}, repo.BuildingNames())
}
