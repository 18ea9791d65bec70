package get_buildings

import "context"

// UseCase use case получения списка зданий каталога
type UseCase struct {
	catalog BuildingCatalog
	logger  Logger
}

// Response модель ответа со списком зданий
type Response struct {
	BuildingNames []string
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalog BuildingCatalog, logger Logger) *UseCase {
	return &UseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute возвращает названия зданий каталога
// Каталог статический и загружен при старте, ошибок здесь быть не может
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	names := uc.catalog.BuildingNames()

	uc.logger.Info("GetBuildings: returning %d building names", len(names))

	return &Response{BuildingNames: names}, nil
}
