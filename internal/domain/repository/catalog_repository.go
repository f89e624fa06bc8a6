package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// BrandRepository puerto de persistencia para Brand.
type BrandRepository interface {
	Create(brand *entity.Brand) error
	GetByID(id string) (*entity.Brand, error)
	GetByName(name string) (*entity.Brand, error)
	Update(brand *entity.Brand) error
	Delete(id string) error
	// IDsByNames resuelve nombres a ids para los predicados del filtro.
	// Nombres inexistentes simplemente no aparecen en el resultado.
	IDsByNames(names []string) ([]string, error)
	// ListNames todos los nombres, para autocompletar.
	ListNames() ([]string, error)
}

// BrandModelRepository puerto de persistencia para BrandModel.
type BrandModelRepository interface {
	Create(model *entity.BrandModel) error
	GetByID(id string) (*entity.BrandModel, error)
	GetByName(name string) (*entity.BrandModel, error)
	Update(model *entity.BrandModel) error
	Delete(id string) error
	IDsByNames(names []string) ([]string, error)
	ListNames() ([]string, error)
}
