package get_buildings

// BuildingCatalog интерфейс каталога комнат
type BuildingCatalog interface {
	// BuildingNames возвращает названия зданий без дубликатов,
	// отсортированные лексикографически
	BuildingNames() []string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
